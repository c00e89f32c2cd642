package clock_test

import (
	"fmt"
	"time"

	"advclock/internal/clock"
)

func ExampleConvert() {
	d := 90 * time.Minute

	fmt.Println(clock.Convert(d, clock.Seconds))
	fmt.Println(clock.Convert(d, clock.Hours))
	fmt.Println(clock.ConvertAs[int](d, clock.Hours))
	// Output:
	// 5400
	// 1.5
	// 1
}

func ExampleTimer_Elapsed() {
	source := clock.NewManualSource(time.Unix(0, 0))
	timer := clock.NewWithEpoch(clock.NewEpoch(source))

	source.Advance(2500 * time.Millisecond)
	fmt.Println(timer.Elapsed(clock.Seconds, true))
	fmt.Println(timer.Elapsed(clock.Seconds, false))
	// Output:
	// 2.5
	// 0
}

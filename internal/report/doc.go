// Package report renders measured durations for human consumption.
package report

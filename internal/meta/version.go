package meta

// VersionSHA is a build-time injected variable describing the Git commit SHA at which advclock was
// built. It is reported by the version flag and attached to error reports as the release.
var VersionSHA string

package version

// Version is set at build time with
// -ldflags "-X chromsplit/internal/version.Version=...".
var Version = "dev"

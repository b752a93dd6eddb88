package version

// AppVersion is the released version, overridable at build time via
// -ldflags "-X lspretty/internal/version.AppVersion=…".
var AppVersion = "0.1.0"

package version

// AppVersion is the gridctl release version. Overridden at build time via
// -ldflags "-X gridctl/internal/version.AppVersion=...".
var AppVersion = "0.3.0"

package version

// BuildVersion is set at build time via -ldflags "-X github.com/duganc/spinning-switches/version.BuildVersion=..."
var BuildVersion = "change-me"

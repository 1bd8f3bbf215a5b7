package main

import "runtime/debug"

// buildVersion is set with -ldflags "-X main.buildVersion=...".
var buildVersion = ""

func init() {
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("pomo {{.Version}}\n")
}

func versionString() string {
	if buildVersion != "" {
		return buildVersion
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if version := info.Main.Version; version != "" && version != "(devel)" {
			return version
		}
	}
	return "devel"
}

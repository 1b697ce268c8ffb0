package docscrape

// Mode selects which extractor runs.
type Mode string

// Supported modes.
const (
	ModeWhatsNew       Mode = "whats-new"
	ModeLatestVersions Mode = "latest-versions"
	ModeDownload       Mode = "download"
	ModePEP            Mode = "pep"
)

// Modes returns every supported mode in CLI order.
func Modes() []Mode {
	return []Mode{ModeWhatsNew, ModeLatestVersions, ModeDownload, ModePEP}
}

// ParseMode validates s as a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", Errorf(EINVALID, "unknown mode %q", s)
}

// Output selects where a report is written.
type Output string

// Supported outputs. The zero value echoes rows to stdout.
const (
	OutputEcho   Output = ""
	OutputPretty Output = "pretty"
	OutputFile   Output = "file"
)

// ParseOutput validates s as an Output. The empty string selects OutputEcho.
func ParseOutput(s string) (Output, error) {
	switch o := Output(s); o {
	case OutputEcho, OutputPretty, OutputFile:
		return o, nil
	default:
		return "", Errorf(EINVALID, "unknown output %q", s)
	}
}

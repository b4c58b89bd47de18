package rustfmt

// BuildArgs assembles the rustfmt argument list. The written file is always last.
func BuildArgs(path, configPath, edition string) []string {
	args := []string{"--emit", "files"}
	if configPath != "" {
		args = append(args, "--config-path", configPath)
	}
	if edition != "" {
		args = append(args, "--edition", edition)
	}
	return append(args, path)
}

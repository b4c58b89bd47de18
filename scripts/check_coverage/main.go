package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

func main() {
	coverageFile := "coverage.out"
	if len(os.Args) > 1 {
		coverageFile = os.Args[1]
	}

	output, err := runCoverTool(coverageFile)
	if err != nil {
		fmt.Printf("❌ Error running go tool cover: %v\n", err)
		os.Exit(1)
	}

	failures, totalCoverage := parseCoverageOutput(output)

	if len(failures) > 0 {
		fmt.Println("❌ Coverage check failed! The following functions have less than 100% coverage:")
		for _, f := range failures {
			fmt.Printf("  %s\n", f)
		}
		os.Exit(1)
	}

	fmt.Printf("✅ All non-main functions are fully covered!\n")
	if totalCoverage != "" {
		fmt.Printf("📊 %s\n", totalCoverage)
	}
}

func runCoverTool(coverageFile string) ([]byte, error) {
	cmd := exec.Command("go", "tool", "cover", "-func", coverageFile)
	return cmd.Output()
}

func parseCoverageOutput(output []byte) (failures []string, totalCoverage string) {
	scanner := bufio.NewScanner(strings.NewReader(string(output)))

	// Function-level exclusions with the coverage they must still reach.
	exclusions := []exclusion{
		// filepath.Abs() only fails when the working directory has gone
		{file: "internal/fsh/path_resolver.go", fn: "Abs", min: 66.0},
		// the windows executable suffixes are not reachable on unix runners
		{file: "internal/fsh/path_resolver.go", fn: "candidates", min: 60.0},
		// a write error after a successful create needs a full disk
		{file: "internal/upload/target.go", fn: "WriteCode", min: 75.0},
		// the working directory lookup in hydrate
		{file: "internal/app/root.go", fn: "hydrate", min: 85.0},
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "total:") {
			totalCoverage = line
			continue
		}

		if shouldSkipLine(line) {
			continue
		}

		if isLineExcluded(line, exclusions) {
			continue
		}

		if !strings.Contains(line, "100.0%") {
			failures = append(failures, line)
		}
	}

	return failures, totalCoverage
}

func shouldSkipLine(line string) bool {
	if !strings.Contains(line, ":") {
		return true
	}
	if strings.Contains(line, "/scripts/") {
		return true
	}
	if strings.Contains(line, "main.go") && strings.Contains(line, "main") {
		return true
	}
	return false
}

type exclusion struct {
	file string
	fn   string
	min  float64
}

// isLineExcluded matches lines of the form "<pkg>/<file>:<line>:\t<func>\t<pct>%".
func isLineExcluded(line string, exclusions []exclusion) bool {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return false
	}
	location, fn := parts[0], parts[1]

	var percentage float64
	if _, err := fmt.Sscanf(strings.TrimSuffix(parts[len(parts)-1], "%"), "%f", &percentage); err != nil {
		return false
	}

	for _, e := range exclusions {
		if strings.Contains(location, "/"+e.file+":") && fn == e.fn && percentage >= e.min {
			return true
		}
	}
	return false
}

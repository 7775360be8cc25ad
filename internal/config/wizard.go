package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// docsRootCandidates are directory names probed for an existing docs tree.
var docsRootCandidates = []string{"docs", "documentation", "doc", "site"}

// detectDocsRoot returns the first candidate directory under dir that exists.
func detectDocsRoot(dir string) string {
	for _, name := range docsRootCandidates {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.IsDir() {
			return name
		}
	}
	return "docs"
}

// RunWizard runs an interactive configuration wizard and saves the resulting
// Config to path. Routes start from the defaults; `docview routes scan`
// prints a table for an existing docs tree.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docview! Let's configure your documentation viewer.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = title

	// 2. Document source.
	sourcePrompt := promptui.Select{
		Label: "Where are the Markdown documents served from?",
		Items: []string{
			"fs   (a local directory)",
			"http (a remote base URL)",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}
	cfg.Source = []SourceType{SourceFS, SourceHTTP}[sourceIdx]

	// 3. Root directory or base URL.
	if cfg.Source == SourceFS {
		wd, _ := os.Getwd()
		rootPrompt := promptui.Prompt{
			Label:   "Docs root directory",
			Default: detectDocsRoot(wd),
		}
		cfg.DocsRoot, err = rootPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("docs root: %w", err)
		}
	} else {
		urlPrompt := promptui.Prompt{
			Label: "Base URL",
			Validate: func(s string) error {
				if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
					return fmt.Errorf("must start with http:// or https://")
				}
				return nil
			},
		}
		cfg.BaseURL, err = urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("base url: %w", err)
		}
	}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("must be a port number")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 5. Sections expanded at startup.
	expandedPrompt := promptui.Prompt{
		Label:   "Sections expanded at startup (comma-separated)",
		Default: strings.Join(cfg.Expanded, ","),
	}
	expandedStr, err := expandedPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("expanded sections: %w", err)
	}
	cfg.Expanded = splitAndTrim(expandedStr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}

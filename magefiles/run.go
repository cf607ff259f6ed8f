//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Renders the testbed scene. SLIM_CONFIG points at a TOML file to use instead of the defaults.
func (Run) Testbed() error {
	args := []string{"run", "main.go"}
	if path := os.Getenv("SLIM_CONFIG"); path != "" {
		args = append(args, "-config", path)
	}
	fmt.Println("Run testbed...")
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}

// Renders the testbed scene again every time the SLIM_CONFIG file changes.
func (Run) Watch() error {
	path := os.Getenv("SLIM_CONFIG")
	if path == "" {
		return fmt.Errorf("SLIM_CONFIG must name the configuration file to watch")
	}
	if _, err := executeCmd("go", withArgs("run", "main.go", "-config", path, "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}

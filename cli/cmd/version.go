package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/rpn/pkg"
)

// Version prints version information.
type Version struct{}

// Run executes the version command.
func (Version) Run(context.Context) error {
	_, err := fmt.Printf("%s %s\n", pkg.Name, strings.TrimSpace(pkg.Version))

	return err
}

package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/oarkflow/listingfilter/internal/interfaces"
	"github.com/oarkflow/listingfilter/internal/page"
	"github.com/oarkflow/listingfilter/internal/toggle"
)

// InspectCommand prints the view model a listing page yields.
type InspectCommand struct{}

type controlReport struct {
	toggle.Control `yaml:",inline"`
	State          string `yaml:"state"`
}

type inspectReport struct {
	Files    controlReport    `yaml:"files"`
	Images   controlReport    `yaml:"images"`
	Eligible []toggle.LinkRef `yaml:"eligible,omitempty"`
	Entries  []toggle.Entry   `yaml:"entries"`
}

func (i *InspectCommand) Signature() string {
	return "inspect"
}

func (i *InspectCommand) Description() string {
	return "Show the entries, file links and control availability of a listing page"
}

func (i *InspectCommand) ArgsUsage() string {
	return "[page.html]"
}

func (i *InspectCommand) Flags() []cli.Flag {
	return []cli.Flag{}
}

func (i *InspectCommand) Handle(c *cli.Context) error {
	in, closeIn, err := openInput(c)
	if err != nil {
		return err
	}
	defer closeIn()

	d, err := page.Parse(in)
	if err != nil {
		return err
	}
	ctrl := toggle.New(d.View())
	report := inspectReport{
		Files:    controlReport{Control: ctrl.Files(), State: ctrl.FilesState().String()},
		Images:   controlReport{Control: ctrl.Images(), State: ctrl.ImagesState().String()},
		Eligible: ctrl.Eligible(),
		Entries:  ctrl.Entries(),
	}
	enc := yaml.NewEncoder(c.App.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

func (i *InspectCommand) Subcommands() []interfaces.Command {
	return []interfaces.Command{}
}

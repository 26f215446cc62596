package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/aws/aws-lambda-go/cfn"
	"github.com/goccy/go-json"
)

// cli is the command line used when the binary runs outside Lambda.
type cli struct {
	Invoke       invokeCmd       `cmd:"" help:"Process a CloudFormation custom resource event file"`
	RenderConfig renderConfigCmd `cmd:"" name:"render-config" help:"Print the provisioning client config"`
}

type invokeCmd struct {
	Event       string `arg:"" type:"existingfile" help:"Path to a custom resource event (JSON)"`
	RequestType string `name:"request-type" help:"Override the event request type (Create, Update, Delete)"`
}

type renderConfigCmd struct {
	Kind     string `enum:"bootstrap-client,rpi-image-builder" default:"rpi-image-builder" help:"Resource kind"`
	Endpoint string `required:"" help:"IoT data endpoint"`
	Template string `required:"" help:"Provisioning template name"`
}

type cliDeps struct {
	Out  io.Writer
	Prov *provisioner
}

type invokeResult struct {
	PhysicalResourceID string                 `json:"PhysicalResourceId"`
	Data               map[string]interface{} `json:"Data,omitempty"`
}

func runCLI(args []string, out io.Writer, p *provisioner) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("fleetprov"),
		kong.Description("Provision IoT fleet provisioning client archives."),
		kong.Writers(out, out),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run(&cliDeps{Out: out, Prov: p})
}

func (c *invokeCmd) Run(deps *cliDeps) error {
	if deps.Prov == nil {
		return errors.New("no provisioner configured")
	}
	body, err := os.ReadFile(c.Event)
	if err != nil {
		return err
	}
	var event cfn.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode %s: %w", c.Event, err)
	}
	if c.RequestType != "" {
		event.RequestType = cfn.RequestType(c.RequestType)
	}

	physicalResourceID, data, err := deps.Prov.Process(context.Background(), event)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(deps.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(invokeResult{PhysicalResourceID: physicalResourceID, Data: data})
}

func (c *renderConfigCmd) Run(deps *cliDeps) error {
	kind, err := resolveKind(c.Kind, "")
	if err != nil {
		return err
	}
	config, err := newClientConfig(kind, c.Endpoint, c.Template).Render()
	if err != nil {
		return err
	}
	_, err = io.WriteString(deps.Out, config)
	return err
}

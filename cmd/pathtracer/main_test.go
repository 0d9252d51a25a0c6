package main

import (
	"testing"

	"github.com/urfave/cli"
)

func TestDefaultFlagValues(t *testing.T) {
	app := cli.NewApp()
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "skybox", Value: "assets/skybox"},
		cli.IntFlag{Name: "width", Value: 1280},
		cli.IntFlag{Name: "height", Value: 960},
		cli.IntFlag{Name: "workers", Value: 16},
		cli.StringFlag{Name: "scene", Value: "default"},
	}

	var gotWorkers int
	var gotScene string
	app.Action = func(c *cli.Context) error {
		gotWorkers = c.Int("workers")
		gotScene = c.String("scene")
		return nil
	}

	if err := app.Run([]string{"pathtracer"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotWorkers != 16 {
		t.Errorf("expected default workers 16, got %d", gotWorkers)
	}
	if gotScene != "default" {
		t.Errorf("expected default scene %q, got %q", "default", gotScene)
	}
}

func TestSceneFlagOverride(t *testing.T) {
	app := cli.NewApp()
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "scene", Value: "default"},
	}

	var gotScene string
	app.Action = func(c *cli.Context) error {
		gotScene = c.String("scene")
		return nil
	}

	if err := app.Run([]string{"pathtracer", "--scene", "cornell"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotScene != "cornell" {
		t.Errorf("expected scene override %q, got %q", "cornell", gotScene)
	}
}

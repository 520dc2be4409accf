// ABOUTME: CLI command definitions for connecting, listing spaces, and clipping
// ABOUTME: Each command drives one controller activation against the configured server

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"clipper-app-api/core/bridge"
	"clipper-app-api/core/clip"
	"clipper-app-api/core/controller"
	"clipper-app-api/core/docmost"
	"clipper-app-api/core/domain"
	"clipper-app-api/core/errors"
	"clipper-app-api/core/extract"
	"clipper-app-api/core/interfaces"
	"clipper-app-api/core/settings"
	"clipper-app-api/infrastructure/messenger/ws"
	"clipper-app-api/infrastructure/readability/shiori"
	"clipper-app-api/pkg/config"
)

// appEnv carries the shared wiring every command needs.
type appEnv struct {
	cfg      *config.Config
	deps     interfaces.Dependencies
	settings *settings.Service
}

// controller builds a fresh controller for one command invocation.
func (e appEnv) controller(content controller.ContentSource) *controller.Controller {
	api := docmost.NewClient(e.deps)
	return controller.New(api, content, e.settings, e.deps.Logger)
}

// agentSource is the default content source: the in-page capture agent.
func (e appEnv) agentSource() controller.ContentSource {
	messenger := ws.NewMessenger(e.cfg.Agent.URL, e.deps.Logger)
	return bridge.NewBridge(messenger, e.deps.Logger)
}

// fileSource extracts content from a local HTML file instead of the agent.
type fileSource struct {
	extractor *extract.Service
	path      string
	pageURL   string
}

func newFileSource(path, pageURL string, logger interfaces.Logger) *fileSource {
	return &fileSource{
		extractor: extract.NewService(shiori.NewParser(), logger),
		path:      path,
		pageURL:   pageURL,
	}
}

func (f *fileSource) RequestContent(ctx context.Context) (*domain.ContentSnapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	return f.extractor.Extract(domain.PageDocument{
		URL:  f.pageURL,
		HTML: string(data),
	})
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(env appEnv) *cli.App {
	return &cli.App{
		Name:    "clipper",
		Usage:   "Clip web pages into a Docmost workspace",
		Version: Version,
		Commands: []*cli.Command{
			connectCmd(env),
			disconnectCmd(env),
			spacesCmd(env),
			clipCmd(env),
			themeCmd(env),
			statusCmd(env),
		},
	}
}

// connectCmd logs in against a server and remembers its URL.
func connectCmd(env appEnv) *cli.Command {
	return &cli.Command{
		Name:  "connect",
		Usage: "Log in to a Docmost server and remember it",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Required: true, Usage: "Server URL (https, or http for localhost)"},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true, Usage: "Account email"},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Account password (or CLIPPER_PASSWORD)"},
			&cli.BoolFlag{Name: "confirm-host-change", Usage: "Confirm switching to a different server host"},
		},
		Action: func(c *cli.Context) error {
			password := c.String("password")
			if password == "" {
				password = os.Getenv("CLIPPER_PASSWORD")
			}

			ctrl := env.controller(env.agentSource())
			err := ctrl.Connect(c.Context, c.String("url"), c.String("email"), password)
			if err != nil && errors.IsValidation(err) && c.Bool("confirm-host-change") && hostChangeWarning(ctrl) {
				// The first submission was refused only to confirm the host
				// change; the flag stands in for the confirming resubmit.
				err = ctrl.Connect(c.Context, c.String("url"), c.String("email"), password)
			}
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			state := ctrl.State()
			fmt.Printf("connected to %s (%d spaces)\n", state.Session.ServerOrigin, len(state.Spaces))
			return nil
		},
	}
}

// hostChangeWarning reports whether the controller's last status was the
// host-change confirmation prompt.
func hostChangeWarning(ctrl *controller.Controller) bool {
	status := ctrl.State().Status
	return status != nil && status.Kind == controller.StatusWarning
}

// disconnectCmd drops the in-memory session; the server URL stays remembered.
func disconnectCmd(env appEnv) *cli.Command {
	return &cli.Command{
		Name:  "disconnect",
		Usage: "Forget the current session",
		Action: func(c *cli.Context) error {
			ctrl := env.controller(env.agentSource())
			if err := ctrl.Disconnect(c.Context); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Println("disconnected")
			return nil
		},
	}
}

// spacesCmd lists spaces or creates a new one.
func spacesCmd(env appEnv) *cli.Command {
	return &cli.Command{
		Name:  "spaces",
		Usage: "Work with spaces on the connected server",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List spaces",
				Action: func(c *cli.Context) error {
					ctrl := env.controller(env.agentSource())
					if err := ctrl.Activate(c.Context); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					state := ctrl.State()
					if !state.Session.Authenticated {
						return cli.Exit("not connected; run 'clipper connect' first", 1)
					}
					for _, space := range state.Spaces {
						marker := " "
						if space.ID == state.SelectedSpaceID {
							marker = "*"
						}
						fmt.Printf("%s %s\t%s\t(%s)\n", marker, space.ID, space.Name, space.Slug)
					}
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create a new space and select it",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Space name"},
				},
				Action: func(c *cli.Context) error {
					ctrl := env.controller(env.agentSource())
					if err := ctrl.Activate(c.Context); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					ctrl.BeginCreateSpace()
					if err := ctrl.ConfirmCreateSpace(c.Context, c.String("name")); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Printf("space created and selected: %s\n", ctrl.State().SelectedSpaceID)
					return nil
				},
			},
		},
	}
}

// clipCmd captures the current page and uploads it to a space.
func clipCmd(env appEnv) *cli.Command {
	return &cli.Command{
		Name:  "clip",
		Usage: "Clip the captured page into a space",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "space", Aliases: []string{"s"}, Usage: "Target space id (defaults to the remembered one)"},
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Override the page title"},
			&cli.StringFlag{Name: "note", Usage: "Note to place above the content"},
			&cli.BoolFlag{Name: "selection", Usage: "Clip the selected fragment instead of the article"},
			&cli.StringFlag{Name: "file", Usage: "Extract from a local HTML file instead of the agent"},
			&cli.StringFlag{Name: "url", Usage: "Page URL for --file extraction"},
		},
		Action: func(c *cli.Context) error {
			source := env.agentSource()
			if path := c.String("file"); path != "" {
				if c.String("url") == "" {
					return cli.Exit("--url is required with --file", 1)
				}
				source = newFileSource(path, c.String("url"), env.deps.Logger)
			}

			ctrl := env.controller(source)
			if err := ctrl.Activate(c.Context); err != nil {
				return cli.Exit(err.Error(), 1)
			}

			spaceID := c.String("space")
			if spaceID == "" {
				spaceID = ctrl.State().SelectedSpaceID
			}

			opts := clip.Options{
				UseSelection:  c.Bool("selection"),
				Note:          c.String("note"),
				TitleOverride: c.String("title"),
			}
			if err := ctrl.Clip(c.Context, spaceID, opts); err != nil {
				return cli.Exit(err.Error(), 1)
			}

			fmt.Printf("clipped %q into space %s\n",
				clip.EffectiveTitle(ctrl.State().Snapshot, opts.TitleOverride), spaceID)
			return nil
		},
	}
}

// themeCmd reads or writes the persisted theme preference.
func themeCmd(env appEnv) *cli.Command {
	return &cli.Command{
		Name:      "theme",
		Usage:     "Show or set the theme preference (auto/light/dark)",
		ArgsUsage: "[theme]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				theme, err := env.settings.Theme(c.Context)
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}
				fmt.Println(theme)
				return nil
			}

			theme := domain.Theme(c.Args().First())
			if err := env.settings.SetTheme(c.Context, theme); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Printf("theme set to %s\n", theme)
			return nil
		},
	}
}

// statusCmd prints the state the controller lands in after activation.
func statusCmd(env appEnv) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show connection state for the remembered server",
		Action: func(c *cli.Context) error {
			ctrl := env.controller(env.agentSource())
			err := ctrl.Activate(c.Context)
			state := ctrl.State()

			fmt.Printf("phase: %s\n", state.Phase)
			if state.Session.ServerOrigin != "" {
				fmt.Printf("server: %s\n", state.Session.ServerOrigin)
			}
			if state.Session.Authenticated {
				fmt.Printf("spaces: %d\n", len(state.Spaces))
			}
			if state.Snapshot != nil {
				fmt.Printf("captured: %s\n", state.Snapshot.Title)
			}
			if state.Status != nil {
				fmt.Printf("status: %s\n", state.Status.Message)
			}
			if err != nil {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"status-timeline/internal/application"

	"github.com/urfave/cli/v2"
)

func snapshotFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "snapshot",
			Aliases:  []string{"s"},
			Usage:    "YAML or JSON file with monitors, metrics, incidents, maintenances and reports",
			Required: true,
		},
		&cli.Int64Flag{Name: "monitor", Aliases: []string{"m"}, Usage: "render only this monitor ID"},
		&cli.StringFlag{Name: "card-type", Usage: "requests, duration, dominant or manual"},
		&cli.StringFlag{Name: "bar-type", Usage: "absolute, dominant or manual"},
		&cli.IntFlag{Name: "window-days", Usage: "number of days to render"},
		&cli.StringFlag{Name: "at", Usage: "render as of this RFC3339 instant instead of now"},
	}
}

func renderCommand(info BuildInfo) *cli.Command {
	flags := append(snapshotFlags(), &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "json, yaml or text",
	})

	return &cli.Command{
		Name:      "render",
		Usage:     "Render the day-by-day timeline of every monitor",
		ArgsUsage: " ",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			rt, err := setup(c, info)
			if err != nil {
				return err
			}
			defer rt.close()

			page, err := rt.service.RenderPage(c.Context, pageRequest(c, rt))
			if err != nil {
				return fmt.Errorf("failed to render page: %w", err)
			}
			return writePage(c.App.Writer, page, rt.cfg.Output)
		},
	}
}

func uptimeCommand(info BuildInfo) *cli.Command {
	return &cli.Command{
		Name:      "uptime",
		Usage:     "Print the uptime of every monitor and of the whole page",
		ArgsUsage: " ",
		Flags:     snapshotFlags(),
		Action: func(c *cli.Context) error {
			rt, err := setup(c, info)
			if err != nil {
				return err
			}
			defer rt.close()

			page, err := rt.service.RenderPage(c.Context, pageRequest(c, rt))
			if err != nil {
				return fmt.Errorf("failed to render page: %w", err)
			}
			return writeUptimes(c.App.Writer, page)
		},
	}
}

func pageRequest(c *cli.Context, rt *runtime) application.PageRequest {
	req := application.PageRequest{Config: rt.render}
	if c.IsSet("monitor") {
		id := c.Int64("monitor")
		req.MonitorID = &id
	}
	return req
}

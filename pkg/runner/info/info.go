// Package info reports where configuration came from.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/missioncontrol/pkg/dashboard"
	"tableflip.dev/missioncontrol/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *dashboard.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("MISSION_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "MISSION_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "MISSION_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Service == nil {
		return errors.New("failed to create dashboard service")
	}

	logFile := n.Config.LogFile()
	if logFile == "" {
		logFile = "(disabled)"
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("key"), bold.Sprint("value"))
	tbl.AddRow("vault_root", n.Config.VaultRoot())
	tbl.AddRow("clock", n.Config.Clock())
	tbl.AddRow("today", n.Service.Today().Format("Mon Jan 2, 2006"))
	tbl.AddRow("log_file", logFile)
	tbl.AddRow("log_level", n.Config.LogLevel())
	_, _ = fmt.Fprintln(out, tbl)

	tasks, err := n.Service.TaskBoard(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Catalog: %d tasks loaded\n", tasks.Len())
	return nil
}

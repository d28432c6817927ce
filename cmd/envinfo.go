/*
Copyright © 2025 The jarcraft authors
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// EnvData represents the structured data for environment information.
type EnvData struct {
	GoVersion     string `json:"goVersion"`
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	JavaHome      string `json:"javaHome,omitempty"`
	SbtHome       string `json:"sbtHome,omitempty"`
	WorkDir       string `json:"workDir"`
	DefaultOutput string `json:"defaultOutput"`
	SbtVersion    string `json:"sbtVersion"`
}

// newEnvinfoCommand creates the envinfo command.
func newEnvinfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envinfo",
		Short: "Show environment information relevant to jarcraft",
		RunE:  runEnvinfo,
	}
	cmd.Flags().Bool("json", false, "Output environment info in JSON format")
	return cmd
}

func runEnvinfo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadToolConfig(cmd)
	if err != nil {
		return err
	}

	wd, _ := os.Getwd()
	data := EnvData{
		GoVersion:     runtime.Version(),
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		JavaHome:      os.Getenv("JAVA_HOME"),
		SbtHome:       os.Getenv("SBT_HOME"),
		WorkDir:       wd,
		DefaultOutput: cfg.Bootstrap.Output,
		SbtVersion:    cfg.Fetch.SbtVersion,
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		encoded, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling environment info: %w", err)
		}
		fmt.Fprintln(out, string(encoded))
		return nil
	}

	fmt.Fprintf(out, "go: %s\n", data.GoVersion)
	fmt.Fprintf(out, "platform: %s/%s\n", data.OS, data.Arch)
	if data.JavaHome != "" {
		fmt.Fprintf(out, "JAVA_HOME: %s\n", data.JavaHome)
	}
	if data.SbtHome != "" {
		fmt.Fprintf(out, "SBT_HOME: %s\n", data.SbtHome)
	}
	fmt.Fprintf(out, "workdir: %s\n", data.WorkDir)
	fmt.Fprintf(out, "default output: %s\n", data.DefaultOutput)
	fmt.Fprintf(out, "sbt version: %s\n", data.SbtVersion)
	return nil
}

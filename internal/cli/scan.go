// filepath: internal/cli/scan.go
package cli

import (
	"fmt"
	"io"
	"moviecatalog/internal/models"
	"moviecatalog/internal/repository"
	"moviecatalog/internal/services"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var recordDrives bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Inspect mounted drives and directories for video files",
}

var scanDrivesCmd = &cobra.Command{
	Use:   "drives",
	Short: "List the drives mounted under the scan roots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScanDrives(cmd.OutOrStdout(), recordDrives)
	},
}

var scanDirCmd = &cobra.Command{
	Use:   "dir <path>",
	Short: "List the video files below a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScanDir(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	scanDrivesCmd.Flags().BoolVar(&recordDrives, "record", false, "Store the scan result in the drive history.")

	RootCmd.AddCommand(scanCmd)
	scanCmd.AddCommand(scanDrivesCmd)
	scanCmd.AddCommand(scanDirCmd)
}

func runScanDrives(w io.Writer, record bool) error {
	if !record {
		drives := services.NewDriveService(cfg, nil, nil).ListDrives()
		renderDrives(w, drives)
		return nil
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		return err
	}
	if err := repo.ValidateSchema(); err != nil {
		return err
	}

	drives, err := services.NewDriveService(cfg, repo, nil).RecordDrives()
	if err != nil {
		return err
	}
	renderDrives(w, drives)
	fmt.Fprintf(w, "%d drive(s) recorded.\n", len(drives))
	return nil
}

func runScanDir(w io.Writer, path string) error {
	files, err := services.NewDriveService(cfg, nil, nil).ScanPath(path)
	if err != nil {
		return err
	}
	renderFiles(w, files)
	return nil
}

func newTable(w io.Writer, header table.Row, rightAligned ...int) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)

	configs := make([]table.ColumnConfig, 0, len(rightAligned))
	for _, number := range rightAligned {
		configs = append(configs, table.ColumnConfig{Number: number, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)
	return tw
}

func renderDrives(w io.Writer, drives []models.DriveInfo) {
	if len(drives) == 0 {
		fmt.Fprintln(w, "No drives found.")
		return
	}
	tw := newTable(w, table.Row{"Name", "Mount point", "Total", "Free"}, 3, 4)
	for _, d := range drives {
		tw.AppendRow(table.Row{d.Name, d.Path, humanize.Bytes(d.TotalSpace), humanize.Bytes(d.FreeSpace)})
	}
	tw.Render()
}

func renderFiles(w io.Writer, files []models.ScannedFile) {
	if len(files) == 0 {
		fmt.Fprintln(w, "No video files found.")
		return
	}
	tw := newTable(w, table.Row{"Title", "File", "Size", "Path"}, 3)
	var total uint64
	for _, f := range files {
		size := uint64(f.Size)
		total += size
		tw.AppendRow(table.Row{f.Title, f.Filename, humanize.Bytes(size), f.Path})
	}
	tw.AppendFooter(table.Row{fmt.Sprintf("%d file(s)", len(files)), "", humanize.Bytes(total), ""})
	tw.Render()
}

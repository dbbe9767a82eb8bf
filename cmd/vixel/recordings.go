package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/everyside/vixel/internal/config"
	"github.com/everyside/vixel/internal/effects"
	"github.com/everyside/vixel/internal/export"
	"github.com/everyside/vixel/internal/frame"
	"github.com/everyside/vixel/internal/storage"
	"github.com/everyside/vixel/internal/viz"
)

func listRecordings(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	recs, err := st.List()
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Println("no recordings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEFFECT\tWIRING\tTIME\tSIZE\tFPS\tFRAMES\tORDER")
	for _, r := range recs {
		order := "logical"
		if r.Physical {
			order = "physical"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dx%d\t%.1f\t%d\t%s\n",
			r.ID,
			r.Effect,
			r.Preset,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Width, r.Height,
			r.FrameRate,
			r.Frames,
			order,
		)
	}
	return w.Flush()
}

func loadRecording(id string) (*storage.Metadata, []*frame.Frame, error) {
	meta, frames, err := storage.New(dataDir).LoadFrames(id)
	if err != nil {
		return nil, nil, err
	}
	if len(frames) == 0 {
		return nil, nil, fmt.Errorf("recording %s has no frames", id)
	}
	if meta.Physical {
		logger.Warn("recording is in physical order, the image shows wiring order", "id", id)
	}
	return meta, frames, nil
}

// writeFile creates path, or the default name when path is empty, and
// hands it to write.
func writeFile(path, fallback string, write func(io.Writer) error) error {
	if path == "" {
		path = fallback
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportGIF(cmd *cobra.Command, args []string) error {
	id := args[0]
	meta, frames, err := loadRecording(id)
	if err != nil {
		return err
	}
	return writeFile(outPath, id+".gif", func(w io.Writer) error {
		return export.GIF(w, frames, meta.FrameRate, scale)
	})
}

func pickFrame(id string) (*frame.Frame, error) {
	_, frames, err := loadRecording(id)
	if err != nil {
		return nil, err
	}
	if frameNum < 0 || frameNum >= len(frames) {
		return nil, fmt.Errorf("frame %d out of range, recording has %d frames", frameNum, len(frames))
	}
	return frames[frameNum], nil
}

func exportPNG(cmd *cobra.Command, args []string) error {
	id := args[0]
	f, err := pickFrame(id)
	if err != nil {
		return err
	}
	return writeFile(outPath, fmt.Sprintf("%s-%d.png", id, frameNum), func(w io.Writer) error {
		return export.PNG(w, f, scale)
	})
}

func exportSVG(cmd *cobra.Command, args []string) error {
	id := args[0]
	f, err := pickFrame(id)
	if err != nil {
		return err
	}
	return writeFile(outPath, fmt.Sprintf("%s-%d.svg", id, frameNum), func(w io.Writer) error {
		return export.SVG(w, f, scale)
	})
}

func showWiring(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	g, err := cfg.Geometry()
	if err != nil {
		return err
	}
	layout, err := cfg.BuildLayout()
	if err != nil {
		return err
	}
	indices, err := layout.Indices(g)
	if err != nil {
		return err
	}
	table, err := viz.RenderWiring(g, indices)
	if err != nil {
		return err
	}
	fmt.Println(table)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tORDER")
	for _, name := range config.ListPresets() {
		regions := config.GetPreset(name, config.DefaultWidth, config.DefaultHeight)
		fmt.Fprintf(w, "%s\t%s\n", name, regions[0].Order.String())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "EFFECT\tDESCRIPTION")
	for _, name := range effects.List() {
		eff, err := effects.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, eff.Description)
	}
	return w.Flush()
}

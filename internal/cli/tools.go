package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/pdfgenie-client/internal/intake"
	"github.com/dtroode/pdfgenie-client/internal/model"
	"github.com/dtroode/pdfgenie-client/internal/workflow"
)

// selectFiles runs the intake for the command arguments.
func (a *App) selectFiles(paths []string, accept intake.AcceptList, multiple bool) ([]intake.File, error) {
	set := intake.NewSet(intake.Options{Multiple: multiple, Accept: accept, Logger: a.deps.Logger})
	if err := set.Add(paths...); err != nil {
		return nil, err
	}

	files := set.Files()
	if skipped := len(paths) - len(files); skipped > 0 && multiple {
		a.present.Info(fmt.Sprintf("Skipped %d file(s) of an unsupported type", skipped))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %v", model.ErrRejectedFile, paths)
	}
	return files, nil
}

func (a *App) runTool(ctx context.Context, view model.View, tool workflow.Tool, paths []string, accept intake.AcceptList) error {
	return a.deps.Guard.Require(ctx, view, func(ctx context.Context) error {
		files, err := a.selectFiles(paths, accept, view == model.ViewMerge)
		if err != nil {
			return err
		}

		if !workflow.Enabled(tool, files) {
			a.present.Info(fmt.Sprintf("Action disabled: %s needs a different selection", tool.Name()))
			if err := tool.Validate(files); err != nil {
				return err
			}
			return model.NewValidationError("selection", "not enough input for "+tool.Name())
		}

		res, err := a.deps.Runner.Run(ctx, tool, files)
		if err != nil {
			return err
		}
		if res.Kind == workflow.ResultDownload {
			a.present.DownloadCard(res.Saved)
		}
		return nil
	})
}

func (a *App) mergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge FILE FILE [FILE...]",
		Short: "Combine PDFs in the given order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTool(cmd.Context(), model.ViewMerge, workflow.Merge{}, args, intake.PDFOnly)
		},
	}
}

func (a *App) splitCommand() *cobra.Command {
	var pages string

	cmd := &cobra.Command{
		Use:   "split FILE --pages 1-3,5",
		Short: "Extract pages into a zip archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTool(cmd.Context(), model.ViewSplit, workflow.Split{Ranges: pages}, args, intake.PDFOnly)
		},
	}
	cmd.Flags().StringVar(&pages, "pages", "", "page ranges, e.g. 1-3,5,7-9")

	return cmd
}

func (a *App) compressCommand() *cobra.Command {
	var quality int

	cmd := &cobra.Command{
		Use:   "compress FILE",
		Short: "Reduce the size of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTool(cmd.Context(), model.ViewCompress, workflow.Compress{Quality: quality}, args, intake.PDFOnly)
		},
	}
	cmd.Flags().IntVar(&quality, "quality", workflow.DefaultQuality, "quality level 0-100, lower means smaller")

	return cmd
}

func (a *App) convertCommand() *cobra.Command {
	var (
		imageFormat string
		dpi         int
	)

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Render every page to an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool := workflow.Convert{Format: imageFormat, DPI: dpi}
			return a.runTool(cmd.Context(), model.ViewConvert, tool, args, intake.PDFOnly)
		},
	}
	cmd.Flags().StringVar(&imageFormat, "format", workflow.DefaultFormat, "image format: png or jpg")
	cmd.Flags().IntVar(&dpi, "dpi", workflow.DefaultDPI, "render resolution")

	return cmd
}

func (a *App) ocrCommand() *cobra.Command {
	var (
		languages []string
		pages     string
		save      bool
	)

	cmd := &cobra.Command{
		Use:   "ocr FILE",
		Short: "Extract text from a scanned PDF or image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.deps.Guard.Require(cmd.Context(), model.ViewOCR, func(ctx context.Context) error {
				files, err := a.selectFiles(args, intake.PDFOrImage, false)
				if err != nil {
					return err
				}

				// each language reuses the uploaded file
				for _, lang := range languages {
					res, err := a.deps.Runner.Run(ctx, workflow.OCR{Language: lang, Pages: pages}, files)
					if err != nil {
						return err
					}
					a.present.TextCard(res.Text)

					if save {
						saved, err := a.deps.Saver.SaveText(ctx, res.Text.ExtractedText, "")
						if err != nil {
							return err
						}
						a.present.DownloadCard(saved)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&languages, "lang", []string{workflow.DefaultLanguage}, "OCR language code, repeatable")
	cmd.Flags().StringVar(&pages, "pages", "", "only these pages, e.g. 1-2")
	cmd.Flags().BoolVar(&save, "save", false, "also save the text to a file")

	return cmd
}

func (a *App) searchableCommand() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "searchable FILE",
		Short: "Add a text layer to a scanned PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool := workflow.SearchablePDF{Language: language}
			return a.runTool(cmd.Context(), model.ViewOCR, tool, args, intake.PDFOrImage)
		},
	}
	cmd.Flags().StringVar(&language, "lang", workflow.DefaultLanguage, "OCR language code")

	return cmd
}

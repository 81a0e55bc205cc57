package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/cfgjs/internal/app/template"
	"github.com/aalvaropc/cfgjs/internal/domain"
	"github.com/aalvaropc/cfgjs/internal/ports"
)

type Materialize struct {
	defs   ports.DefinitionsLoader
	writer ports.ConfigWriter
	notice string
	log    *slog.Logger
}

type MaterializeOption func(*Materialize)

// WithNotice overrides the header notice of the generated file.
func WithNotice(notice string) MaterializeOption {
	return func(uc *Materialize) { uc.notice = notice }
}

func WithLogger(l *slog.Logger) MaterializeOption {
	return func(uc *Materialize) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewMaterialize(dl ports.DefinitionsLoader, w ports.ConfigWriter, opts ...MaterializeOption) *Materialize {
	uc := &Materialize{
		defs:   dl,
		writer: w,
		notice: template.NoticeFromDefinitions,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads definitions from definitionsPath, renders the recognized keys
// and overwrites outputPath. Nothing is written when loading fails.
func (uc *Materialize) Execute(ctx context.Context, definitionsPath, outputPath string) error {
	defs, err := uc.defs.LoadDefinitions(definitionsPath)
	if err != nil {
		return err
	}
	uc.log.Debug("materialize.parsed", "path", definitionsPath, "definitions", len(defs))

	keys := domain.Resolve(defs)
	for _, s := range domain.Inspect(defs) {
		if !s.Set {
			uc.log.Debug("materialize.key_empty", "key", s.Name)
		}
	}

	content, err := template.RenderConfig(keys, uc.notice)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := uc.writer.WriteConfig(outputPath, content); err != nil {
		return err
	}
	uc.log.Debug("materialize.written", "path", outputPath, "bytes", len(content))
	return nil
}

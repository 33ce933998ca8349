// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/yaml.v3"

	"clientgen/internal/config"
	"clientgen/internal/content"
	"clientgen/internal/diag"
	"clientgen/internal/helper"
	"clientgen/internal/loader"
	"clientgen/internal/model"
	"clientgen/internal/pipeline"
)

type fileResponse struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

type generateResponse struct {
	RunID       string            `json:"runId" yaml:"runId"`
	Target      string            `json:"target" yaml:"target"`
	Files       []fileResponse    `json:"files" yaml:"files"`
	Diagnostics []diag.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// serveGenerate: тело — документ JSON или YAML, параметры запроса переопределяют настройки:
// target, style, client, strict, stringAsString, passthrough (список через запятую).
func (srv *Server) serveGenerate(ftx *fiber.Ctx) (err error) {

	var cfg *config.Config
	if cfg, err = srv.requestConfig(ftx); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	format := ""
	if contentType := ftx.Get(fiber.HeaderContentType); contentType != "" {
		switch content.Kind(contentType) {
		case content.KindJSON:
			format = loader.FormatJSON
		case content.KindYAML:
			format = loader.FormatYAML
		default:
			return fiber.NewError(fiber.StatusUnsupportedMediaType, "descriptor document must be json or yaml")
		}
	}
	var doc *model.Document
	if doc, err = loader.Decode(ftx.Body(), format); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var res *pipeline.Result
	res, err = pipeline.Generate(ftx.UserContext(), cfg, []*model.Document{doc})
	switch {
	case errors.Is(err, pipeline.ErrStrict):
		ftx.Status(fiber.StatusUnprocessableEntity)
	case err != nil:
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	srv.log.Debug().
		Str("runId", res.RunID).
		Int("files", len(res.Files)).
		Int("diagnostics", len(res.Diagnostics)).
		Msg("client generated")
	return srv.send(ftx, newGenerateResponse(res))
}

func (srv *Server) requestConfig(ftx *fiber.Ctx) (cfg *config.Config, err error) {

	clone := *srv.cfg
	cfg = &clone
	if target := ftx.Query("target"); target != "" {
		cfg.Target = target
	}
	if style := ftx.Query("style"); style != "" {
		cfg.Style = style
	}
	if name := ftx.Query("client"); name != "" {
		cfg.Client.Name = name
	}
	if passthrough := ftx.Query("passthrough"); passthrough != "" {
		cfg.Classifier.Passthrough = helper.ParseStringList(passthrough)
	}
	cfg.Strict = ftx.QueryBool("strict", cfg.Strict)
	cfg.StringAsString = ftx.QueryBool("stringAsString", cfg.StringAsString)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	// go.mod и каталог вывода имеют смысл только для записи на диск
	cfg.Client.Module = ""
	cfg.Output = ""
	return
}

// send отвечает YAML, если клиент его просит, иначе JSON.
func (srv *Server) send(ftx *fiber.Ctx, response any) (err error) {

	if content.Kind(ftx.Get(fiber.HeaderAccept)) != content.KindYAML {
		return ftx.JSON(response)
	}
	var data []byte
	if data, err = yaml.Marshal(response); err != nil {
		return err
	}
	ftx.Set(fiber.HeaderContentType, content.CanonicalMIME(content.KindYAML))
	return ftx.Send(data)
}

func newGenerateResponse(res *pipeline.Result) (response generateResponse) {

	response = generateResponse{
		RunID:       res.RunID,
		Target:      res.Target,
		Files:       make([]fileResponse, 0, len(res.Files)),
		Diagnostics: res.Diagnostics,
	}
	if response.Diagnostics == nil {
		response.Diagnostics = []diag.Diagnostic{}
	}
	for _, file := range res.Files {
		response.Files = append(response.Files, fileResponse{Path: file.Path, Content: string(file.Content)})
	}
	return
}

package server

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/danmuck/aocctl/internal/inputs"
	"github.com/danmuck/aocctl/internal/puzzles"
	"github.com/gin-gonic/gin"
)

// PuzzleInfo is the listing shape for one registered puzzle.
type PuzzleInfo struct {
	puzzles.Metadata
	Parts []puzzles.PartSpec `json:"parts"`
}

type solveResponse struct {
	ID        string `json:"id"`
	Day       int    `json:"day"`
	Part      string `json:"part"`
	Answer    int    `json:"answer"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

func (s *Server) listPuzzles(c *gin.Context) {
	registry := s.runner.Registry()
	metas := registry.ListMetadata()
	list := make([]PuzzleInfo, 0, len(metas))
	for _, meta := range metas {
		solver, _ := registry.Resolve(meta.ID)
		list = append(list, PuzzleInfo{Metadata: meta, Parts: solver.Parts()})
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": list})
}

func (s *Server) getPuzzle(c *gin.Context) {
	solver, err := s.runner.Registry().Lookup(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, PuzzleInfo{Metadata: solver.Metadata(), Parts: solver.Parts()})
}

func (s *Server) solvePart(c *gin.Context) {
	solver, err := s.runner.Registry().Lookup(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	part, err := puzzles.ParsePart(c.Param("part"))
	if err != nil {
		s.fail(c, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.maxInput))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := string(body)
	if len(body) == 0 {
		if input, err = s.inputs.Load(c.Request.Context(), solver.Metadata().Day); err != nil {
			s.fail(c, err)
			return
		}
	}

	res, err := s.runner.Run(c.Request.Context(), solver.Metadata().ID, part, input)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, solveResponse{
		ID:        res.ID,
		Day:       res.Day,
		Part:      res.Part.String(),
		Answer:    res.Answer,
		ElapsedMS: res.Elapsed.Milliseconds(),
	})
}

func (s *Server) checkExamples(c *gin.Context) {
	solver, err := s.runner.Registry().Lookup(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	id := solver.Metadata().ID
	reports, err := s.runner.CheckExamples(c.Request.Context(), id)
	if err != nil && !errors.Is(err, puzzles.ErrExampleMismatch) {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"passed":  err == nil,
		"reports": reports,
	})
}

// fail maps runner errors onto HTTP status codes.
func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	var status int
	switch {
	case errors.Is(err, puzzles.ErrPuzzleNotFound), errors.Is(err, inputs.ErrNoSession):
		status = http.StatusNotFound
	case errors.Is(err, puzzles.ErrInvalidPart):
		status = http.StatusBadRequest
	case errors.Is(err, inputs.ErrFetchFailed):
		status = http.StatusBadGateway
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

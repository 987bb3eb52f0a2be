package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/xugehan/english-related-generator/history"
)

type issueRequest struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
}

func (s *Server) handleCreateIssue(c echo.Context) error {
	var req issueRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "issue title is required"})
	}

	issue := &history.IssueReport{
		Category:    req.Category,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Contact:     req.Contact,
		ClientIP:    c.RealIP(),
	}
	if err := s.store.CreateIssue(issue); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, issue)
}

func (s *Server) handleListIssues(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !history.ValidIssueStatus(status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown status " + status})
	}
	issues, err := s.store.ListIssues(status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"issues": issues})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleUpdateIssueStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	issue, err := s.store.UpdateIssueStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "issue not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, issue)
}

func (s *Server) handleHistory(c echo.Context) error {
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	entries, total, err := s.store.ListGenerations(offset, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"entries": entries,
		"total":   total,
	})
}

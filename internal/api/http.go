package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/victornm/quizduel/internal/errors"
)

// RegisterHTTP mounts the REST routes. Authentication middleware must run
// before these handlers.
func (a *API) RegisterHTTP(r gin.IRouter) {
	v1 := r.Group("/v1")

	v1.POST("/rooms", a.handleCreateRoom)
	v1.POST("/rooms/:roomId/join", a.handleJoinRoom)
	v1.GET("/rooms/:roomId", a.handleGetRoom)
	v1.POST("/matches/:matchId/submissions", a.handleSubmitAnswers)
	v1.GET("/matches/:matchId", a.handleGetMatch)
	v1.GET("/sections/:sectionId/leaderboard", a.handleGetLeaderboard)
	v1.GET("/ws", a.handleWS)
}

func (a *API) handleCreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgument("malformed body: %v", err))
		return
	}

	resp, err := a.createRoom(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a *API) handleJoinRoom(c *gin.Context) {
	var req JoinRoomRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, errors.InvalidArgument("malformed body: %v", err))
			return
		}
	}
	req.RoomID = c.Param("roomId")

	resp, err := a.joinRoom(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a *API) handleGetRoom(c *gin.Context) {
	resp, err := a.getRoom(c.Request.Context(), &GetRoomRequest{RoomID: c.Param("roomId")})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a *API) handleSubmitAnswers(c *gin.Context) {
	var req SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgument("malformed body: %v", err))
		return
	}
	req.MatchID = c.Param("matchId")

	resp, err := a.submitAnswers(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a *API) handleGetMatch(c *gin.Context) {
	resp, err := a.getMatch(c.Request.Context(), &GetMatchRequest{MatchID: c.Param("matchId")})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a *API) handleGetLeaderboard(c *gin.Context) {
	req := GetLeaderboardRequest{SectionID: c.Param("sectionId")}
	if s := c.Query("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			writeError(c, errors.InvalidArgument("limit must be a number"))
			return
		}
		req.Limit = limit
	}

	resp, err := a.getLeaderboard(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type errorResponse struct {
	Error *errors.Error `json:"error"`
}

func writeError(c *gin.Context, err error) {
	e := errors.Convert(err)
	if e.Code == errors.CodeInternal {
		slog.ErrorContext(c.Request.Context(), "api: request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
	}

	c.JSON(e.HTTPStatusCode(), errorResponse{Error: e})
}

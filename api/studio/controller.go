package studioapi

import (
	"io"
	"net/http"

	"github.com/beka-birhanu/maze-lab-api/api/identity"
	"github.com/beka-birhanu/maze-lab-api/maze"
	"github.com/beka-birhanu/maze-lab-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StudioController exposes the maze editor, algorithm control and event
// stream over HTTP.
type StudioController struct {
	studio i.MazeStudio
}

// NewStudioController initializes a StudioController.
func NewStudioController(studio i.MazeStudio) (*StudioController, error) {
	return &StudioController{studio: studio}, nil
}

// RegisterPublic registers public routes.
func (sc *StudioController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (sc *StudioController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", sc.create)
		mazes.GET("/:ID", sc.snapshot)
		mazes.PUT("/:ID/cells", sc.setCell)
		mazes.POST("/:ID/reset", sc.reset)

		mazes.POST("/:ID/solve", sc.solve)
		mazes.POST("/:ID/generate", sc.generate)
		mazes.POST("/:ID/pause", sc.pause)
		mazes.POST("/:ID/resume", sc.resume)
		mazes.POST("/:ID/interrupt", sc.interrupt)
		mazes.PUT("/:ID/delay", sc.setDelay)

		mazes.GET("/:ID/events", sc.events)

		mazes.POST("/:ID/save", sc.save)
	}

	saved := route.Group("/saved")
	{
		saved.GET("/", sc.listSaved)
		saved.POST("/:ID/load", sc.load)
	}
}

// mazeID parses the :ID route parameter.
func mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

// ownerID extracts the authenticated user ID from the request claims.
func ownerID(ctx *gin.Context) (uuid.UUID, bool) {
	raw, ok := ctx.Get(identity.ContextUserClaims)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	userID, ok := claims["userID"].(string)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return id, true
}

// create opens a new maze session.
func (sc *StudioController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := parseConn(request.Conn)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fill, err := parseFill(request.Fill)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := sc.studio.CreateMaze(request.Width, request.Height, conn, fill)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, &CreateMazeResponse{ID: id.String()})
}

// snapshot returns the current session view.
func (sc *StudioController) snapshot(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	snapshot, err := sc.studio.Snapshot(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, snapshot)
}

// setCell mutates one cell kind between runs.
func (sc *StudioController) setCell(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	var request SetCellRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind, err := parseKind(request.Kind)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.studio.SetCell(id, maze.Position{Row: request.Row, Col: request.Col}, kind); err != nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// reset clears visualization state.
func (sc *StudioController) reset(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	if err := sc.studio.ResetMaze(id); err != nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// solve starts a path-finder run.
func (sc *StudioController) solve(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := sc.studio.Solve(id, request.Variant); err != nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusAccepted)
}

// generate starts a randomizer run.
func (sc *StudioController) generate(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	params := i.GenerateParams{
		Density: request.Density,
		Seed:    request.Seed,
		Root:    request.Root,
	}
	if err := sc.studio.Generate(id, params); err != nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusAccepted)
}

// pause toggles the running algorithm.
func (sc *StudioController) pause(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	if err := sc.studio.Pause(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// resume returns a paused algorithm to running.
func (sc *StudioController) resume(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	if err := sc.studio.Resume(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// interrupt cancels the running algorithm cooperatively.
func (sc *StudioController) interrupt(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	if err := sc.studio.Interrupt(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// setDelay updates inter-generation pacing.
func (sc *StudioController) setDelay(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	var request DelayRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := sc.studio.SetDelay(id, request.MS); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// events streams algorithm progress as server-sent events until the client
// disconnects or unsubscribes.
func (sc *StudioController) events(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	events, unsubscribe, err := sc.studio.Subscribe(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	defer unsubscribe()

	ctx.Stream(func(w io.Writer) bool {
		select {
		case e, open := <-events:
			if !open {
				return false
			}
			ctx.SSEvent(e.Kind.String(), e)
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
}

// save persists the session layout under the caller's account.
func (sc *StudioController) save(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	var request SaveMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	savedID, err := sc.studio.SaveMaze(id, owner, request.Name)
	if err != nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"id": savedID.String()})
}

// listSaved lists the caller's saved mazes.
func (sc *StudioController) listSaved(ctx *gin.Context) {
	owner, ok := ownerID(ctx)
	if !ok {
		return
	}
	saved, err := sc.studio.ListSaved(owner)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]*SavedMazeResponse, 0, len(saved))
	for _, s := range saved {
		response = append(response, &SavedMazeResponse{
			ID:     s.ID.String(),
			Name:   s.Name,
			Width:  s.Width,
			Height: s.Height,
			Conn:   s.Conn,
			Rows:   s.Rows,
		})
	}
	ctx.JSON(http.StatusOK, response)
}

// load opens a new session from a saved layout.
func (sc *StudioController) load(ctx *gin.Context) {
	savedID, ok := mazeID(ctx)
	if !ok {
		return
	}
	id, err := sc.studio.LoadMaze(savedID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, &CreateMazeResponse{ID: id.String()})
}

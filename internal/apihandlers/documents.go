package apihandlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docreader/internal/app"
	"docreader/internal/models"
	"docreader/internal/tasks"

	"github.com/hibiken/asynq"
)

// DocumentHandlers exposes the single document-ingestion endpoint this
// module serves, adapted from the teacher's content handlers in
// handlers.go down to the one operation SPEC_FULL.md names: accept a
// document, store it, chunk it, and enqueue embedding.
type DocumentHandlers struct {
	App *app.App
}

func NewDocumentHandlers(a *app.App) *DocumentHandlers {
	return &DocumentHandlers{App: a}
}

// chunkDTO is the JSON shape of one chunk in the response body.
type chunkDTO struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// CreateDocument handles POST /v1/documents: it accepts a multipart file
// upload, stores the raw bytes, runs the parser chain and chunker inline,
// enqueues embedding for the resulting chunks, and returns the chunk list.
func (h *DocumentHandlers) CreateDocument(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		BadRequest(ctx, "multipart field \"file\" is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		Internal(ctx, "failed to open uploaded file")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		Internal(ctx, "failed to read uploaded file")
		return
	}

	storageKey := fmt.Sprintf("documents/%s/%s", uuid.NewString(), fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	if _, err := h.App.Storage.Upload(ctx.Request.Context(), storageKey, bytes.NewReader(content), fileHeader.Size, contentType); err != nil {
		h.App.Logger.WithError(err).Error("failed to store uploaded document")
		Internal(ctx, "failed to store document")
		return
	}

	parsed, err := h.App.Parser.Parse(ctx.Request.Context(), bytes.NewReader(content))
	if err != nil {
		HandleError(ctx, err, "failed to parse document")
		return
	}
	if parsed.Text == "" {
		HandleError(ctx, models.ErrEmptyDocument, "")
		return
	}

	chunks := h.App.Splitter.SplitText(parsed.Text)
	chunkDTOs := make([]chunkDTO, len(chunks))
	for i, c := range chunks {
		chunkDTOs[i] = chunkDTO{Start: c.Start, End: c.End, Text: c.Text}
	}

	documentID := time.Now().UnixNano()

	payload, err := json.Marshal(tasks.ParseAndChunkPayload{
		DocumentID:  documentID,
		SourceName:  fileHeader.Filename,
		ContentType: contentType,
		StorageKey:  storageKey,
	})
	if err != nil {
		Internal(ctx, "failed to encode job payload")
		return
	}

	task := asynq.NewTask(tasks.TypeParseAndChunk, payload)
	info, err := h.App.JobClient.Enqueue(ctx.Request.Context(), task)
	if err != nil {
		h.App.Logger.WithError(err).Error("failed to enqueue parse-and-chunk job")
		Internal(ctx, "failed to enqueue processing job")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"document_id": documentID,
		"storage_key": storageKey,
		"job_id":      info.ID,
		"queue":       info.Queue,
		"chunks":      chunkDTOs,
	})
}

// Package worker registers and runs the asynq job handlers for this
// module's two background tasks (parse-and-chunk, ocr-recognize). No
// teacher file provides this package directly — cmd/worker.go references
// an internal/worker package the retrieval pack never includes — so this
// is new code, grounded in the dependency-struct-plus-RegisterHandlers
// usage pattern cmd/worker.go itself demonstrates for the teacher's own
// (dropped) embedding/summarization handlers.
package worker

import (
	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"docreader/internal/chunking"
	"docreader/internal/ocr"
	"docreader/internal/parsers"
	"docreader/internal/storage"
	"docreader/internal/store"
	"docreader/internal/tasks"
)

// Deps bundles every dependency the job handlers need, mirroring the
// teacher's per-job Deps-struct convention (EmbeddingDeps, SummarizationDeps).
type Deps struct {
	Parser     parsers.Parser
	Splitter   *chunking.Splitter
	OCR        *ocr.Registry
	Storage    interface {
		storage.Uploader
		storage.Downloader
	}
	Embedder store.EmbeddingService
	Vectors  store.VectorStore
	Logger   logrus.FieldLogger
}

// RegisterHandlers wires every job type this module runs onto mux,
// matching cmd/worker.go's worker.RegisterHandlers(mux, deps) call.
func RegisterHandlers(mux *asynq.ServeMux, deps Deps) {
	mux.HandleFunc(tasks.TypeParseAndChunk, HandleParseAndChunk(deps))
	mux.HandleFunc(tasks.TypeOCRRecognize, HandleOCRRecognize(deps))
}

package http

import (
	"io"
	"net/http"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
	"github.com/scg-heim/heim-backend-go/internal/handler/http/response"
	"github.com/scg-heim/heim-backend-go/internal/service/dataset"
)

const maxUploadSize = 32 << 20 // 32 MiB

type DatasetHandler interface {
	// Sync triggers one sync pass against the remote sources
	Sync(w http.ResponseWriter, r *http.Request)
	// ImportMembers replaces the roster from an uploaded workbook
	ImportMembers(w http.ResponseWriter, r *http.Request)
	// ImportRecords replaces the records from an uploaded workbook
	ImportRecords(w http.ResponseWriter, r *http.Request)
	// SeedDemo loads the built-in demo dataset
	SeedDemo(w http.ResponseWriter, r *http.Request)
}

type datasetHandlerImpl struct {
	syncService   roster.SyncService
	ingestService roster.IngestService
	store         roster.Store
	snapshots     roster.SnapshotRepository
}

func NewDatasetHandler(
	syncService roster.SyncService,
	ingestService roster.IngestService,
	store roster.Store,
	snapshots roster.SnapshotRepository,
) DatasetHandler {
	return &datasetHandlerImpl{
		syncService:   syncService,
		ingestService: ingestService,
		store:         store,
		snapshots:     snapshots,
	}
}

// Sync handles POST /sync. The auto query flag suppresses the success
// feedback in the result; it does not change the data path.
func (h *datasetHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	auto := r.URL.Query().Get("auto") == "true"

	result, err := h.syncService.Sync(r.Context(), auto)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ImportMembers handles POST /datasets/members
func (h *datasetHandlerImpl) ImportMembers(w http.ResponseWriter, r *http.Request) {
	data, ok := readUpload(w, r)
	if !ok {
		return
	}

	members, err := h.ingestService.ImportMembers(data)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.store.ReplaceMembers(members)
	if err := h.snapshots.SaveMembers(r.Context(), members); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Members imported", map[string]int{"members": len(members)})
}

// ImportRecords handles POST /datasets/records. The current roster is the
// reconciliation context for department resolution.
func (h *datasetHandlerImpl) ImportRecords(w http.ResponseWriter, r *http.Request) {
	data, ok := readUpload(w, r)
	if !ok {
		return
	}

	records, err := h.ingestService.ImportRecords(data, h.store.Current().Members)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.store.ReplaceRecords(records)
	if err := h.snapshots.SaveRecords(r.Context(), records); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Records imported", map[string]int{"records": len(records)})
}

// SeedDemo handles POST /datasets/demo
func (h *datasetHandlerImpl) SeedDemo(w http.ResponseWriter, r *http.Request) {
	snap := dataset.DemoSnapshot()
	h.store.Replace(snap)

	if err := h.snapshots.SaveMembers(r.Context(), snap.Members); err != nil {
		response.HandleError(w, err)
		return
	}
	if err := h.snapshots.SaveRecords(r.Context(), snap.Records); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Demo dataset loaded", map[string]int{
		"members": len(snap.Members),
		"records": len(snap.Records),
	})
}

// readUpload pulls the "file" part out of a multipart upload.
func readUpload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file upload", map[string]string{"file": "required"})
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalServerError(w, "Failed to read upload")
		return nil, false
	}
	return data, true
}

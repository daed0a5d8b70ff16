package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/guuullchin11/baku-air-guardian/internal/api/models"
	"github.com/guuullchin11/baku-air-guardian/internal/api/response"
	"github.com/guuullchin11/baku-air-guardian/internal/skyimage"
)

// maxImageBytes bounds uploads at 16 MiB.
const maxImageBytes = 16 << 20

// ImageHandler handles the sky photo analysis endpoint.
type ImageHandler struct {
	analyzer *skyimage.Analyzer
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(analyzer *skyimage.Analyzer) *ImageHandler {
	return &ImageHandler{analyzer: analyzer}
}

// Analyze handles POST /api/analyze-image.
// Accepts either a multipart upload with an "image" file field or a JSON
// body with a base64 payload. Analysis itself never fails: the analyzer
// degrades to a fixed classification, so only input errors reach 400.
func (h *ImageHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)

	var (
		data     []byte
		filename string
		err      error
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		data, filename, err = readMultipartImage(r)
	} else {
		data, filename, err = readJSONImage(r)
	}
	if err != nil {
		response.BadRequest(w, r, err.Error())
		return
	}

	mimeType, ok := skyimage.AllowedExtension(filename)
	if !ok {
		response.BadRequest(w, r, "unsupported file type, allowed: png, jpg, jpeg, gif")
		return
	}

	result := h.analyzer.Analyze(r.Context(), data, mimeType)
	response.JSON(w, r, http.StatusOK, result)
}

// readMultipartImage extracts the upload from the "image" form field. The
// file is staged through a temp file that is removed on every path; removal
// errors are swallowed.
func readMultipartImage(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		return nil, "", errInvalidUpload
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, "", errMissingImage
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "skyimage-*")
	if err != nil {
		return nil, "", errInvalidUpload
	}
	defer func() {
		tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, file); err != nil {
		return nil, "", errInvalidUpload
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, "", errInvalidUpload
	}

	data, err := io.ReadAll(tmp)
	if err != nil {
		return nil, "", errInvalidUpload
	}

	return data, header.Filename, nil
}

// readJSONImage extracts the image from a JSON body with a base64 payload.
// Data URL prefixes ("data:image/jpeg;base64,...") are tolerated.
func readJSONImage(r *http.Request) ([]byte, string, error) {
	var req models.AnalyzeImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, "", errInvalidUpload
	}
	if req.ImageBase64 == "" {
		return nil, "", errMissingImage
	}

	payload := req.ImageBase64
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", errInvalidUpload
	}

	filename := req.Filename
	if filename == "" {
		filename = "upload.jpg"
	}

	return data, filename, nil
}

type uploadError string

func (e uploadError) Error() string { return string(e) }

const (
	errMissingImage  = uploadError("image is required")
	errInvalidUpload = uploadError("invalid image upload")
)

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vif/internal/todo"
	"vif/pkg/response"
)

// maxAudioBytes caps uploaded recordings at 25 MB, the speech API's own limit.
const maxAudioBytes = 25 << 20

// Resolve godoc
// @Summary     Resolve a natural-language utterance into todo actions
// @Description Sends the utterance plus the selected day's todos to the configured LLM, validates the returned action batch and applies it. On resolver failure the utterance is added verbatim instead.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Utterance and context"
// @Success     200 {object} resolveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Resolve(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		h.respond(c, err)
		return
	}

	response.OK(c, h.newResolveResp(output))
}

// List godoc
// @Summary     List a day's todos
// @Description Returns the given day's todos in the current sort order plus completion stats. Defaults to today in the given timezone.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       date     query string false "Calendar date (YYYY-MM-DD)"
// @Param       timezone query string false "IANA timezone for resolving today"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respond(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Toggle godoc
// @Summary     Toggle completion of one todo
// @Tags        Todos
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Toggle(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		h.respond(c, err)
		return
	}

	response.OK(c, nil)
}

// Update godoc
// @Summary     Edit one todo
// @Description Partially updates a todo. Absent fields keep their prior value; date and time accept explicit values to change them.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Todo ID"
// @Param       body body editReq true "Fields to update"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Edit(ctx, input); err != nil {
		h.l.Errorf(ctx, "uc.Edit: %v", err)
		h.respond(c, err)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete one todo
// @Tags        Todos
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respond(c, err)
		return
	}

	response.OK(c, nil)
}

// Clear godoc
// @Summary     Bulk-remove a day's todos
// @Description Removes the given day's todos matching the scope. Todos on other days are never affected.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body clearReq true "Scope and date"
// @Success     200 {object} clearResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClearReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Clear(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		h.respond(c, err)
		return
	}

	response.OK(c, clearResp{Removed: output.Removed})
}

// Transcribe godoc
// @Summary     Transcribe recorded audio to text
// @Description Accepts a multipart "file" part containing browser-recorded audio and returns the recognized text.
// @Tags        Speech
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Audio recording"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/speech/transcriptions [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	if fileHeader.Size > maxAudioBytes {
		response.Error(c, todo.ErrUnsupportedAudio, map[string]interface{}{"max_bytes": maxAudioBytes})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	defer file.Close()

	output, err := h.uc.Transcribe(ctx, todo.TranscribeInput{
		Audio:    file,
		MIMEType: fileHeader.Header.Get("Content-Type"),
		Filename: fileHeader.Filename,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		h.respond(c, err)
		return
	}

	response.OK(c, transcribeResp{Text: output.Text})
}

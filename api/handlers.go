package api

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saqibullah/medmate/form"
	"github.com/saqibullah/medmate/symptom"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the symptom form backed by a single Form.
type Handler struct {
	form *form.Form
}

func NewHandler(f *form.Form) *Handler {
	return &Handler{form: f}
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").
		Funcs(template.FuncMap{"label": symptom.Label}).
		ParseFS(templateFS, "templates/*.html"))
}

// Register wires the page and JSON routes onto r.
func Register(r *gin.Engine, h *Handler) {
	r.SetHTMLTemplate(Templates())

	r.GET("/", h.Page)
	r.POST("/input", h.SetInput)
	r.POST("/list", h.ToggleList)
	r.POST("/symptoms/:name/toggle", h.Toggle)
	r.POST("/predict", h.Predict)
	r.POST("/reset", h.Reset)

	g := r.Group("/api")
	g.GET("/state", h.State)
	g.GET("/symptoms", h.Symptoms)
	g.POST("/submit", h.Submit)
}

type pageData struct {
	State  form.State
	Notice string
	Year   int
}

func (h *Handler) Page(c *gin.Context) {
	data := pageData{State: h.form.Snapshot(), Year: time.Now().Year()}
	if c.Query("error") != "" {
		data.Notice = form.FailureNotice
	}
	c.HTML(http.StatusOK, "page.html", data)
}

func (h *Handler) SetInput(c *gin.Context) {
	h.form.SetCustomInput(c.PostForm("custom"))
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ToggleList(c *gin.Context) {
	h.form.ToggleList()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Toggle(c *gin.Context) {
	name := c.Param("name")
	if !symptom.Known(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown symptom: " + name})
		return
	}
	h.form.Toggle(name)
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, h.form.Snapshot())
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Predict handles the page's Predict button.
func (h *Handler) Predict(c *gin.Context) {
	if custom, ok := c.GetPostForm("custom"); ok {
		h.form.SetCustomInput(custom)
	}
	out := h.form.Submit(c.Request.Context())
	if out.Status == form.Failed {
		log.Printf("prediction %s failed: %v", out.ID, out.Err)
		c.Redirect(http.StatusSeeOther, "/?error=1")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Reset(c *gin.Context) {
	h.form.Reset()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.form.Snapshot())
}

func (h *Handler) Symptoms(c *gin.Context) {
	catalog := symptom.Catalog()
	out := make([]gin.H, 0, len(catalog))
	for _, s := range catalog {
		out = append(out, gin.H{"id": s, "label": symptom.Label(s)})
	}
	c.JSON(http.StatusOK, out)
}

// SubmitInput optionally replaces the form input before submitting. A
// non-nil Symptoms becomes the whole selection.
type SubmitInput struct {
	Custom   *string  `json:"custom"`
	Symptoms []string `json:"symptoms"`
}

func (h *Handler) Submit(c *gin.Context) {
	var input SubmitInput
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	for _, s := range input.Symptoms {
		if !symptom.Known(s) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown symptom: " + s})
			return
		}
	}
	if input.Custom != nil {
		h.form.SetCustomInput(*input.Custom)
	}
	if input.Symptoms != nil {
		h.form.SetSelection(input.Symptoms)
	}

	out := h.form.Submit(c.Request.Context())
	switch out.Status {
	case form.Skipped:
		c.Status(http.StatusNoContent)
	case form.Busy:
		c.JSON(http.StatusConflict, gin.H{"error": "prediction already in progress"})
	case form.Failed:
		log.Printf("prediction %s failed: %v", out.ID, out.Err)
		c.JSON(http.StatusBadGateway, gin.H{"error": form.FailureNotice})
	default:
		c.JSON(http.StatusOK, gin.H{
			"id":         out.ID,
			"symptoms":   out.Symptoms,
			"prediction": out.Result.Disease,
			"confidence": out.Result.Confidence,
		})
	}
}

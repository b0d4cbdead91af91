package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/medassist/scribe/internal/config"
	"github.com/medassist/scribe/internal/core"
	"github.com/medassist/scribe/internal/driver"
	"github.com/medassist/scribe/internal/nlp"
)

type Server struct {
	Engine *core.Engine

	// Port is the configured listen port; the PORT env var overrides it.
	Port string
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}

	// Env vars override (or prepend) the configured classifier providers.
	if provider := os.Getenv("CLASSIFIER_PROVIDER"); provider != "" {
		override := config.ProviderConfig{
			Provider: provider,
			Model:    os.Getenv("CLASSIFIER_MODEL"),
			APIKey:   os.Getenv("CLASSIFIER_API_KEY"),
			BaseURL:  os.Getenv("CLASSIFIER_BASE_URL"),
		}
		cfg.Classifier.Providers = append([]config.ProviderConfig{override}, cfg.Classifier.Providers...)
	}
	if uri := os.Getenv("MEMGRAPH_URI"); uri != "" {
		cfg.Graph.URI = uri
		cfg.Graph.User = os.Getenv("MEMGRAPH_USER")
		cfg.Graph.Password = os.Getenv("MEMGRAPH_PASSWORD")
	}

	classifier, err := nlp.NewClassifierChain(context.Background(), cfg.Classifier.Providers)
	if err != nil {
		log.Fatalf("Failed to initialize sentiment classifier: %v", err)
	}

	// The encounter graph is a side feature; an empty URI disables it.
	var store driver.GraphDriver
	if cfg.Graph.URI != "" {
		d, err := driver.NewMemgraphDriver(cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password)
		if err != nil {
			log.Fatalf("Failed to connect to encounter graph store: %v", err)
		}
		if err := d.BuildIndices(context.Background()); err != nil {
			log.Printf("Warning: failed to build graph indices: %v", err)
		}
		store = d
	}

	return &Server{
		Engine: core.NewEngine(nlp.NewRuleSegmenter(), classifier, store),
		Port:   cfg.Server.Port,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/summary", s.Summary)
	r.POST("/sentiment", s.Sentiment)
	r.POST("/soap", s.SOAPNote)
	r.POST("/dialogue", s.Dialogue)
	r.POST("/keywords", s.Keywords)

	return r
}

type TranscriptRequest struct {
	Transcript string `json:"transcript"`
}

type StatementRequest struct {
	Statement string `json:"statement"`
}

func (s *Server) Summary(c *gin.Context) {
	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	summary, err := s.Engine.ProcessSummary(c.Request.Context(), req.Transcript)
	if err != nil {
		log.Printf("Failed to build summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transcript"})
		return
	}

	if s.Engine.Store != nil {
		entities, err := s.Engine.Entities.Extract(c.Request.Context(), req.Transcript)
		if err == nil {
			if id, err := s.Engine.RecordEncounter(c.Request.Context(), summary, entities); err != nil {
				log.Printf("Failed to record encounter: %v", err)
			} else {
				c.Header("X-Encounter-ID", id)
			}
		}
	}

	c.JSON(http.StatusOK, summary)
}

func (s *Server) Sentiment(c *gin.Context) {
	var req StatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	label, err := s.Engine.ProcessSentimentIntent(c.Request.Context(), req.Statement)
	if err != nil {
		log.Printf("Failed to label statement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process statement"})
		return
	}

	c.JSON(http.StatusOK, label)
}

func (s *Server) SOAPNote(c *gin.Context) {
	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	note, err := s.Engine.ProcessSOAPNote(c.Request.Context(), req.Transcript)
	if err != nil {
		log.Printf("Failed to build SOAP note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transcript"})
		return
	}

	c.JSON(http.StatusOK, note)
}

func (s *Server) Dialogue(c *gin.Context) {
	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	analyses, err := s.Engine.AnalyzeDialogue(c.Request.Context(), req.Transcript)
	if err != nil {
		log.Printf("Failed to analyze dialogue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transcript"})
		return
	}

	overall, err := s.Engine.OverallSentiment(c.Request.Context(), req.Transcript)
	if err != nil {
		log.Printf("Failed to aggregate dialogue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transcript"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"statements": analyses, "overall": overall})
}

func (s *Server) Keywords(c *gin.Context) {
	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	keywords, err := s.Engine.Keywords(c.Request.Context(), req.Transcript)
	if err != nil {
		log.Printf("Failed to extract keywords: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transcript"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"keywords": keywords})
}

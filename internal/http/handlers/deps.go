package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"shopmate/internal/catalog"
	"shopmate/internal/config"
	"shopmate/internal/repos"
	"shopmate/internal/services"
	"shopmate/internal/session"
)

type Deps struct {
	PageHandler   *PageHandler
	ChatHandler   *ChatHandler
	CartHandler   *CartHandler
	ScanHandler   *ScanHandler
	SurveyHandler *SurveyHandler
	AdsHandler    *AdsHandler
	OffersHandler *OffersHandler
	IdleHandler   *IdleHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, sessions *session.Manager, orc services.Completer, cat *catalog.Catalog) *Deps {
	surveyRepo := repos.NewSurveyRepo(db)

	chatSvc := services.NewChatService(orc)
	surveySvc := services.NewSurveyService(surveyRepo)
	adsSvc := services.NewAdsService(cfg.AdsDir)

	return &Deps{
		PageHandler:   &PageHandler{Sessions: sessions, Catalog: cat},
		ChatHandler:   &ChatHandler{Chat: chatSvc, Sessions: sessions},
		CartHandler:   &CartHandler{Sessions: sessions, Catalog: cat},
		ScanHandler:   &ScanHandler{Catalog: cat},
		SurveyHandler: &SurveyHandler{Survey: surveySvc},
		AdsHandler:    &AdsHandler{Ads: adsSvc},
		OffersHandler: &OffersHandler{},
		IdleHandler:   &IdleHandler{Sessions: sessions},
	}
}

// ensureSID pins a kiosk session cookie, minting one on first contact.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}

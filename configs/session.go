package configs

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/mongodb/v2"
)

// Admin sessions live server-side in the sessions collection with an
// absolute two hour expiry, independent of activity.
const SessionTTL = 2 * time.Hour

var (
	sessionOnce  sync.Once
	sessionStore *session.Store
)

func SessionStore() *session.Store {
	sessionOnce.Do(func() {
		storage := mongodb.New(mongodb.Config{
			ConnectionURI: EnvMongoURI(),
			Database:      DatabaseName,
			Collection:    "sessions",
			Reset:         false,
		})

		sessionStore = session.New(session.Config{
			Storage:        storage,
			Expiration:     SessionTTL,
			KeyLookup:      "cookie:admin_session",
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		})
	})
	return sessionStore
}

package registry

import (
	"github.com/nfrund/courseboard/internal/domain"
	"github.com/nfrund/courseboard/internal/events"
	"github.com/nfrund/courseboard/internal/rendering"
	"github.com/nfrund/courseboard/internal/storage"
	"github.com/nfrund/courseboard/internal/view/layouts"
)

// Shared services, registered by the server before modules boot.
const (
	UserRepositoryKey   Key[domain.UserRepository]   = "users.repository"
	CourseRepositoryKey Key[domain.CourseRepository] = "courses.repository"
	MediaStoreKey       Key[*storage.MediaStore]     = "media.store"
	PublisherKey        Key[events.Publisher]        = "events.publisher"
	RendererKey         Key[rendering.Renderer]      = "rendering.renderer"
	SiteConfigKey       Key[layouts.SiteConfig]      = "site.config"
)

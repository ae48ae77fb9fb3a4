package social

import (
	"slices"
	"strings"

	"github.com/matzehuels/seohelper/pkg/config"
	errs "github.com/matzehuels/seohelper/pkg/errors"
	"github.com/matzehuels/seohelper/pkg/meta"
)

// Card types accepted by SetCard.
const (
	CardApp               = "app"
	CardGallery           = "gallery"
	CardPhoto             = "photo"
	CardPlayer            = "player"
	CardProduct           = "product"
	CardSummary           = "summary"
	CardSummaryLargeImage = "summary_large_image"
)

// CardTypes returns the supported card types, sorted.
func CardTypes() []string {
	return []string{
		CardApp,
		CardGallery,
		CardPhoto,
		CardPlayer,
		CardProduct,
		CardSummary,
		CardSummaryLargeImage,
	}
}

// Twitter is the Twitter Card block.
type Twitter struct {
	enabled bool
	metas   *meta.Collection
}

// NewTwitter creates the block from configuration. It fails with
// INVALID_CARD when cfg.Card is set to an unknown card type.
func NewTwitter(cfg config.Twitter) (*Twitter, error) {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = config.DefaultTwitterPrefix
	}
	tw := &Twitter{
		enabled: cfg.Enabled,
		metas:   meta.NewSocial(prefix, meta.AttrName),
	}
	if cfg.Card != "" {
		if err := tw.SetCard(cfg.Card); err != nil {
			return nil, err
		}
	}
	tw.SetSite(cfg.Site).SetTitle(cfg.Title)
	tw.metas.AddMap(cfg.Metas)
	return tw, nil
}

// SetCard sets twitter:card.
func (tw *Twitter) SetCard(card string) error {
	card = strings.ToLower(strings.TrimSpace(card))
	if !slices.Contains(CardTypes(), card) {
		return errs.New(errs.ErrCodeInvalidCard, "unsupported twitter card %q (supported: %s)",
			card, strings.Join(CardTypes(), ", "))
	}
	tw.metas.Add("card", card)
	return nil
}

// SetSite sets twitter:site, prefixing the handle with "@" when missing.
func (tw *Twitter) SetSite(site string) *Twitter {
	site = strings.TrimSpace(site)
	if site == "" {
		return tw
	}
	if !strings.HasPrefix(site, "@") {
		site = "@" + site
	}
	tw.metas.Add("site", site)
	return tw
}

// SetTitle sets twitter:title.
func (tw *Twitter) SetTitle(title string) *Twitter { return tw.AddMeta("title", title) }

// SetDescription sets twitter:description.
func (tw *Twitter) SetDescription(description string) *Twitter {
	return tw.AddMeta("description", description)
}

// AddImage sets twitter:image. Only http and https URLs are accepted.
func (tw *Twitter) AddImage(url string) error {
	if err := errs.ValidateURL(url); err != nil {
		return err
	}
	tw.AddMeta("image", url)
	return nil
}

// AddMeta adds or replaces a tag. Empty values are ignored.
func (tw *Twitter) AddMeta(name, content string) *Twitter {
	tw.metas.Add(name, content)
	return tw
}

// AddMetas adds tags in order.
func (tw *Twitter) AddMetas(pairs ...meta.Pair) *Twitter {
	tw.metas.AddMany(pairs...)
	return tw
}

// RemoveMeta removes tags by full key ("twitter:image").
func (tw *Twitter) RemoveMeta(keys ...string) *Twitter {
	tw.metas.Remove(keys...)
	return tw
}

// SetPrefix changes the prefix of every tag.
func (tw *Twitter) SetPrefix(prefix string) *Twitter {
	tw.metas.SetPrefix(prefix)
	return tw
}

func (tw *Twitter) Enable() *Twitter  { tw.enabled = true; return tw }
func (tw *Twitter) Disable() *Twitter { tw.enabled = false; return tw }
func (tw *Twitter) IsEnabled() bool   { return tw.enabled }

// Metas returns the underlying collection.
func (tw *Twitter) Metas() *meta.Collection { return tw.metas }

// Render returns the Twitter tags, or "" when disabled.
func (tw *Twitter) Render() string {
	if !tw.enabled {
		return ""
	}
	return tw.metas.Render()
}

// String implements fmt.Stringer.
func (tw *Twitter) String() string { return tw.Render() }

var (
	_ meta.Renderable = (*OpenGraph)(nil)
	_ meta.Renderable = (*Twitter)(nil)
)

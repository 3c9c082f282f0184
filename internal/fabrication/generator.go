package fabrication

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/loom/internal/requirements"
)

// Generator holds one immutable set of fabricated data. A Generator is
// built in full before it becomes visible to readers, so its fields are
// safe for concurrent reads.
type Generator struct {
	Seed        uint64    `json:"seed"`
	GeneratedAt time.Time `json:"generated_at"`

	Items         []Item             `json:"items"`
	Relationships []ItemRelationship `json:"relationships"`
	Issues        []Issue            `json:"issues"`
	IssueLinks    []IssueLink        `json:"issue_links"`
	Parts         []Part             `json:"parts"`
	BOM           []BOMEntry         `json:"bom"`
	ChangeNotices []ChangeNotice     `json:"change_notices"`
	Emails        []Email            `json:"emails"`
	Calendar      []CalendarMessage  `json:"calendar"`
	Pulse         []PulseItem        `json:"pulse"`

	// artifactRefs maps stored requirement rows to the item and issue IDs
	// fabricated from them during a seeded run.
	artifactRefs map[uuid.UUID]requirements.ArtifactRefs
}

type buildConfig struct {
	seed   uint64
	seeds  []requirements.Requirement
	config Config
}

// Stream offsets keep the per-family RNG streams independent so the
// families can generate concurrently and still reproduce from one seed.
const (
	streamItems = iota + 1
	streamIssues
	streamParts
	streamEmails
	streamCalendar
	streamLinks
)

func newStream(seed, offset uint64) (*rand.Rand, *gofakeit.Faker) {
	s := seed + offset
	return rand.New(rand.NewPCG(s, s)), gofakeit.New(s)
}

// build fabricates a complete data set. Entity families generate
// concurrently on independent RNG streams; relationships and the pulse
// feed run afterward since they reference the generated entities.
func build(ctx context.Context, cfg buildConfig) (*Generator, error) {
	if cfg.seed == 0 {
		cfg.seed = rand.Uint64()
	}

	g := &Generator{
		Seed:         cfg.seed,
		GeneratedAt:  time.Now().UTC(),
		artifactRefs: map[uuid.UUID]requirements.ArtifactRefs{},
	}

	var itemRefs, issueRefs map[uuid.UUID][]string

	grp, _ := errgroup.WithContext(ctx)

	grp.Go(func() error {
		rng, f := newStream(cfg.seed, streamItems)
		g.Items, itemRefs = generateItems(rng, f, cfg.seeds)
		return nil
	})

	grp.Go(func() error {
		rng, f := newStream(cfg.seed, streamIssues)
		g.Issues, issueRefs = generateIssues(rng, f, cfg.seeds)
		return nil
	})

	grp.Go(func() error {
		rng, f := newStream(cfg.seed, streamParts)
		g.Parts = generateParts(rng, f, len(cfg.seeds) > 0)
		g.ChangeNotices = generateChangeNotices(rng, f, g.Parts, len(cfg.seeds) > 0)
		return nil
	})

	grp.Go(func() error {
		rng, f := newStream(cfg.seed, streamEmails)
		g.Emails = generateEmails(rng, f, cfg.seeds)
		return nil
	})

	grp.Go(func() error {
		rng, f := newStream(cfg.seed, streamCalendar)
		g.Calendar = generateCalendar(rng, f, cfg.seeds)
		return nil
	})

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rng, f := newStream(cfg.seed, streamLinks)
	g.Relationships = generateRelationships(rng, f, g.Items, cfg.config.RelationshipGap)
	g.IssueLinks = generateIssueLinks(rng, g.Issues, cfg.config.IssueLinkGap)
	g.BOM = generateBOM(rng, g.Parts)
	g.Pulse = buildPulse(g, cfg.config.PulseWindowDuration())

	for id, items := range itemRefs {
		refs := g.artifactRefs[id]
		refs.ItemIDs = items
		g.artifactRefs[id] = refs
	}

	for id, issues := range issueRefs {
		refs := g.artifactRefs[id]
		refs.IssueIDs = issues
		g.artifactRefs[id] = refs
	}

	return g, nil
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.IntN(len(values))]
}

func sampleOf[T any](rng *rand.Rand, values []T, n int) []T {
	if n > len(values) {
		n = len(values)
	}

	out := make([]T, n)
	for i, j := range rng.Perm(len(values))[:n] {
		out[i] = values[j]
	}
	return out
}

// intBetween returns a uniform value in [low, high].
func intBetween(rng *rand.Rand, low, high int) int {
	return low + rng.IntN(high-low+1)
}

func paginate[T any](values []T, page, size int) []T {
	start := (page - 1) * size
	if start >= len(values) {
		return []T{}
	}

	end := start + size
	if end > len(values) {
		end = len(values)
	}
	return values[start:end]
}

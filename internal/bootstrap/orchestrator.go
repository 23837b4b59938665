package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/domain/entity"
)

// State is the end state of a bootstrap run.
type State string

const (
	// StateReady means both the filesystem and the database branch
	// succeeded.
	StateReady State = "ready"

	// StateReadyDegraded means the database branch succeeded but the
	// filesystem branch failed: the application serves, uploads are
	// disabled until the directory is fixed.
	StateReadyDegraded State = "ready_degraded"

	// StateFatal means the database branch failed; the application
	// cannot serve.
	StateFatal State = "fatal"
)

// Result describes what a bootstrap run achieved.
type Result struct {
	State           State
	FilesystemReady bool
	DatabaseReady   bool
	Diagnostics     []string
}

// Err returns a non-nil error when the run ended fatally.
func (r Result) Err() error {
	if r.State != StateFatal {
		return nil
	}
	return fmt.Errorf("bootstrap failed: %s", strings.Join(r.Diagnostics, "; "))
}

// SeedData bundles everything the database branch seeds on first run.
type SeedData struct {
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	Company       *entity.CompanySettings
	Categories    []entity.ServiceCategory
	Services      []entity.AdditionalService
}

// Orchestrator runs the filesystem and database bootstrap branches. The
// branches are independent: a failure in one never prevents the other from
// completing. Running it again, from another process or via the one-shot
// command while the server is up, converges on the same end state.
type Orchestrator struct {
	uploadDir *UploadDir
	admin     *AdminSeeder
	settings  *SettingsSeeder
	catalog   *CatalogSeeder
	seed      SeedData
	logger    *zap.Logger
}

// NewOrchestrator creates a new Orchestrator instance.
func NewOrchestrator(
	uploadDir *UploadDir,
	admin *AdminSeeder,
	settings *SettingsSeeder,
	catalog *CatalogSeeder,
	seed SeedData,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		uploadDir: uploadDir,
		admin:     admin,
		settings:  settings,
		catalog:   catalog,
		seed:      seed,
		logger:    logger,
	}
}

// Run executes both branches and reports the combined end state. It is
// called once per process start, before the server accepts requests, and
// carries no hidden state: calling it N times leaves the store exactly as
// one call does.
func (o *Orchestrator) Run(ctx context.Context) Result {
	var res Result

	if err := o.runFilesystem(); err != nil {
		res.Diagnostics = append(res.Diagnostics, err.Error())
		o.logger.Warn("filesystem bootstrap failed, uploads disabled", zap.Error(err))
	} else {
		res.FilesystemReady = true
	}

	if err := o.runDatabase(ctx); err != nil {
		res.Diagnostics = append(res.Diagnostics, err.Error())
		o.logger.Error("database bootstrap failed", zap.Error(err))
	} else {
		res.DatabaseReady = true
	}

	switch {
	case res.DatabaseReady && res.FilesystemReady:
		res.State = StateReady
	case res.DatabaseReady:
		res.State = StateReadyDegraded
	default:
		res.State = StateFatal
	}

	o.logger.Info("bootstrap finished",
		zap.String("state", string(res.State)),
		zap.String("upload_dir", o.uploadDir.Path()),
	)
	return res
}

func (o *Orchestrator) runFilesystem() error {
	if err := o.uploadDir.Ensure(); err != nil {
		return err
	}
	return o.uploadDir.CheckWritable()
}

func (o *Orchestrator) runDatabase(ctx context.Context) error {
	if err := o.admin.EnsureDefaultAdmin(ctx, o.seed.AdminUsername, o.seed.AdminPassword, o.seed.AdminEmail); err != nil {
		return wrapStoreErr(err)
	}
	if err := o.settings.EnsureCompanySettings(ctx, o.seed.Company); err != nil {
		return wrapStoreErr(err)
	}
	if err := o.catalog.EnsureCatalog(ctx, o.seed.Categories, o.seed.Services); err != nil {
		return wrapStoreErr(err)
	}
	return nil
}

func wrapStoreErr(err error) error {
	if isStoreUnreachable(err) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}

// isStoreUnreachable reports whether err means the store could not be
// reached at all, as opposed to a rejected operation. Timeouts, server
// selection failures and network-level driver errors all count.
func isStoreUnreachable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var selErr topology.ServerSelectionError
	if errors.As(err, &selErr) {
		return true
	}
	return mongo.IsNetworkError(err)
}

package cli

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/checks"
	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/system"
)

// ErrHugoMissing is returned when the hugo executable cannot be run
var ErrHugoMissing = errors.New("hugo is not installed or not in PATH")

// ErrChecksFailed is returned by callers that turn a failed report into an
// exit status
var ErrChecksFailed = errors.New("one or more checks failed")

// RunSuite cleans the previous build, builds the test site and validates the
// output. The returned report is nil when the run stopped before validation.
func RunSuite(ctx *Context) (*checks.Report, error) {
	ctx.UI.Header("Hugo Admonitions Test Suite")

	if err := checkHugo(ctx); err != nil {
		return nil, err
	}

	buildDir := ctx.Config.ResolvedBuildDir()
	lock := system.NewRunLock(buildDir)
	if err := lock.TryLock(); err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			ctx.Logger.Warn("failed to release run lock", zap.Error(err))
		}
	}()

	if ctx.Config.Clean {
		if _, err := CleanBuild(ctx); err != nil {
			return nil, err
		}
	}

	ctx.UI.Info("Building test site...")
	start := time.Now()
	if err := ctx.Hugo.Build(ctx.Config.SiteDir, buildDir); err != nil {
		ctx.UI.Error("Hugo build failed")
		return nil, err
	}
	ctx.Logger.Debug("hugo build finished",
		zap.String("site_dir", ctx.Config.SiteDir),
		zap.Duration("elapsed", time.Since(start)))
	ctx.UI.Success("Build successful")

	report := Validate(ctx)
	PrintSummary(ctx, report)
	return report, nil
}

// checkHugo verifies hugo can run and warns when it is older than the
// configured minimum
func checkHugo(ctx *Context) error {
	if !ctx.Hugo.IsInstalled() {
		if system.CommandExists(ctx.Hugo.Binary()) {
			ctx.UI.Errorf("Found %s but `%s version` failed", ctx.Hugo.Binary(), ctx.Hugo.Binary())
		} else {
			ctx.UI.Error("Hugo is not installed or not in PATH")
		}
		ctx.UI.Errorf("Please install Hugo v%s or later: https://gohugo.io/installation/", system.MinimumHugoVersion)
		return ErrHugoMissing
	}

	version := ctx.Hugo.Version()
	ctx.UI.Infof("Testing with Hugo v%s", version)
	ctx.UI.Print("")

	if ctx.Config.MinHugoVersion == "" || version == system.UnknownVersion {
		return nil
	}
	cmp, err := system.CompareVersions(version, ctx.Config.MinHugoVersion)
	if err != nil {
		ctx.Logger.Debug("could not compare hugo versions", zap.String("version", version), zap.Error(err))
		return nil
	}
	if cmp < 0 {
		ctx.UI.Warningf("Hugo v%s is older than the supported minimum v%s", version, ctx.Config.MinHugoVersion)
	}
	return nil
}

// CleanBuild removes the previous build output, asking first when the UI is
// interactive and AssumeYes is not set. It reports whether anything was
// removed.
func CleanBuild(ctx *Context) (bool, error) {
	buildDir := ctx.Config.ResolvedBuildDir()

	exists, err := ctx.FS.DirectoryExists(buildDir)
	if err != nil {
		return false, err
	}
	if !exists {
		ctx.Logger.Debug("no previous build to clean", zap.String("build_dir", buildDir))
		return false, nil
	}

	if !ctx.AssumeYes {
		confirm, err := ctx.UI.PromptYesNo(fmt.Sprintf("Remove previous build at %s?", buildDir), true)
		if err != nil {
			return false, fmt.Errorf("failed to confirm cleanup: %w", err)
		}
		if !confirm {
			ctx.UI.Info("Keeping previous build")
			return false, nil
		}
	}

	ctx.UI.Info("Cleaning previous build...")
	if err := ctx.FS.RemoveDirectory(buildDir); err != nil {
		return false, fmt.Errorf("failed to clean previous build: %w", err)
	}
	return true, nil
}

// Validate runs the check suite against the build output and prints each
// result as it is produced
func Validate(ctx *Context) *checks.Report {
	ctx.UI.Step("Validating output...")

	in := checks.Input{
		BuildDir:   ctx.Config.ResolvedBuildDir(),
		ContentDir: ctx.Config.ResolvedContentDir(),
		MarkupExt:  ctx.Config.MarkupExt,
	}

	group := checks.GroupOutput
	return ctx.Suite.Run(in, func(c checks.Check, r checks.Result) {
		if c.Group != group {
			group = c.Group
			ctx.UI.Step("Checking specific test cases...")
		}
		ctx.Logger.Debug("check finished",
			zap.String("check", c.Name),
			zap.Stringer("severity", c.Severity),
			zap.Stringer("status", r.Status),
			zap.Int("count", r.Count))
		printResult(ctx, r)
	})
}

func printResult(ctx *Context, r checks.Result) {
	switch {
	case r.Status == checks.StatusSkipped:
		return
	case r.IsError():
		ctx.UI.Error(r.Message)
	case r.IsWarning():
		ctx.UI.Warning(r.Message)
	case r.Status == checks.StatusPass:
		ctx.UI.Success(r.Message)
	}
}

// PrintSummary prints the verdict and the warning count
func PrintSummary(ctx *Context, report *checks.Report) {
	ctx.UI.Print("")
	ctx.UI.Separator()

	if report.Passed() {
		ctx.UI.Success("All tests passed!")
	} else {
		ctx.UI.Failuref("Tests failed with %d error(s)", report.Errors())
	}

	if w := report.Warnings(); w > 0 {
		ctx.UI.Noticef("%d warning(s)", w)
	}
}

// Package imagebuild builds the container image for a staged docker bundle
// through the local Docker daemon.
package imagebuild

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
)

var (
	ErrDockerUnavailable = errors.New("docker daemon is not available")
	ErrNoDockerfile      = errors.New("build context has no Dockerfile")
)

// dockerAPI is the part of the Docker client the builder uses.
type dockerAPI interface {
	Ping(ctx context.Context) (types.Ping, error)
	ImageBuild(ctx context.Context, buildContext io.Reader, options types.ImageBuildOptions) (types.ImageBuildResponse, error)
	Close() error
}

// Options describes one image build.
type Options struct {
	ContextDir string
	Dockerfile string
	Tags       []string
	Labels     map[string]string
	NoCache    bool
}

// Result reports a finished build.
type Result struct {
	Tags     []string      `json:"tags"`
	Duration time.Duration `json:"duration"`
}

type Builder struct {
	newClient func() (dockerAPI, error)
}

func NewBuilder() *Builder {
	return &Builder{
		newClient: func() (dockerAPI, error) {
			return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
		},
	}
}

// Available checks if the Docker daemon is accessible.
func (b *Builder) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	cli, err := b.newClient()
	if err != nil {
		return false
	}
	defer func() { _ = cli.Close() }()

	_, err = cli.Ping(ctx)
	return err == nil
}

// Build sends the context directory to the daemon and streams build progress
// to out. A build step failure reported by the daemon is returned as an error.
func (b *Builder) Build(ctx context.Context, opts Options, out io.Writer) (*Result, error) {
	if opts.Dockerfile == "" {
		opts.Dockerfile = "Dockerfile"
	}
	if _, err := os.Stat(filepath.Join(opts.ContextDir, opts.Dockerfile)); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoDockerfile, opts.ContextDir)
	}
	if out == nil {
		out = io.Discard
	}

	cli, err := b.newClient()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDockerUnavailable, err)
	}
	defer func() { _ = cli.Close() }()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	_, err = cli.Ping(pingCtx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDockerUnavailable, err)
	}

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(TarContext(opts.ContextDir, pw))
	}()
	defer pr.Close()

	start := time.Now()
	resp, err := cli.ImageBuild(ctx, pr, types.ImageBuildOptions{
		Tags:        opts.Tags,
		Dockerfile:  opts.Dockerfile,
		Labels:      opts.Labels,
		NoCache:     opts.NoCache,
		Remove:      true,
		ForceRemove: true,
	})
	if err != nil {
		return nil, fmt.Errorf("image build request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := jsonmessage.DisplayJSONMessagesStream(resp.Body, out, 0, false, nil); err != nil {
		return nil, fmt.Errorf("image build failed: %w", err)
	}

	return &Result{Tags: opts.Tags, Duration: time.Since(start)}, nil
}

// TarContext writes the regular files and directories under dir to w as a
// tar stream with slash-separated relative names.
func TarContext(dir string, w io.Writer) error {
	tw := tar.NewWriter(w)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if !d.IsDir() && !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		if d.IsDir() {
			header.Name += "/"
		}
		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		tw.Close()
		return err
	}
	return tw.Close()
}

package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Store persists user profiles.
type Store interface {
	Get(name string) (Profile, error)
	Put(p Profile) error
	Delete(name string) error
	List(ctx context.Context) []Profile
}

const fileExt = ".json"

// Load opens the diskv backed store under cfg.BasePath(). A nil cfg loads
// the configuration with LoadConfig.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("profile: base path unknown")
	}
	return &diskStore{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      256 * 1024,
	})}, nil
}

type diskStore struct {
	d *diskv.Diskv
}

func (s *diskStore) Get(name string) (Profile, error) {
	if err := ValidateName(name); err != nil {
		return Profile{}, err
	}
	if !s.d.Has(name) {
		return Profile{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	data, err := s.d.Read(name)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: read %q: %w", name, err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("profile: decode %q: %w", name, err)
	}
	p.Name = name
	p.Builtin = false
	return p, nil
}

func (s *diskStore) Put(p Profile) error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if _, ok := builtin(p.Name); ok {
		return fmt.Errorf("%w: %q", ErrBuiltin, p.Name)
	}
	p.Builtin = false
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := s.d.Write(p.Name, data); err != nil {
		return fmt.Errorf("profile: write %q: %w", p.Name, err)
	}
	return nil
}

func (s *diskStore) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if _, ok := builtin(name); ok {
		return fmt.Errorf("%w: %q", ErrBuiltin, name)
	}
	if err := s.d.Erase(name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return fmt.Errorf("profile: erase %q: %w", name, err)
	}
	return nil
}

// List returns the builtins followed by the stored profiles, each group
// sorted by name. Unreadable files are skipped.
func (s *diskStore) List(ctx context.Context) []Profile {
	stored := make([]Profile, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if ValidateName(key) != nil {
			continue
		}
		p, err := s.Get(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		stored = append(stored, p)
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].Name < stored[j].Name })
	return append(Builtins(), stored...)
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + fileExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, fileExt)
}

package refdata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/unicover"
	"github.com/npillmayer/unicover/ucd"
)

// Store manages the persisted reference artifacts, one JSON file per
// Unicode version, inside a single data directory. Artifacts are
// write-once: rebuilding an installed version fails instead of
// overwriting.
type Store struct {
	dir string
}

// NewStore opens (creating if necessary) a store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

const (
	artifactPrefix = "unicover-"
	artifactSuffix = ".json"
)

func (s *Store) path(version string) string {
	return filepath.Join(s.dir, artifactPrefix+version+artifactSuffix)
}

// Save persists reference data as the artifact for its version. An already
// installed version is never overwritten.
func (s *Store) Save(ref *ReferenceData) error {
	file, err := os.OpenFile(s.path(ref.Version), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return unicover.Errorf(unicover.KindArtifactExists,
				"reference data for Unicode %s is already installed", ref.Version)
		}
		return err
	}
	defer file.Close()
	enc := json.NewEncoder(file)
	if err := enc.Encode(ref); err != nil {
		return err
	}
	tracer().Infof("installed reference data for Unicode %s", ref.Version)
	return nil
}

// Load reads the artifact for one Unicode version.
func (s *Store) Load(version string) (*ReferenceData, error) {
	data, err := os.ReadFile(s.path(version))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, unicover.Errorf(unicover.KindMissingReferenceVersion,
				"no reference data installed for Unicode %s", version)
		}
		return nil, err
	}
	ref := &ReferenceData{}
	if err := json.Unmarshal(data, ref); err != nil {
		return nil, unicover.Wrap(unicover.KindMalformedInput, err,
			"reference artifact for Unicode %s", version)
	}
	return ref, nil
}

// Versions enumerates the installed Unicode versions in ascending version
// order.
func (s *Store) Versions() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var versions []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, artifactPrefix) || !strings.HasSuffix(name, artifactSuffix) {
			continue
		}
		versions = append(versions, strings.TrimSuffix(strings.TrimPrefix(name, artifactPrefix), artifactSuffix))
	}
	sort.Slice(versions, func(i, j int) bool {
		return ucd.CompareVersions(versions[i], versions[j]) < 0
	})
	return versions, nil
}

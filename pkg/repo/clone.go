package repo

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jeerrry/gitc/internal/logging"
	"github.com/jeerrry/gitc/pkg/object"
	"github.com/jeerrry/gitc/pkg/transport"
)

// Clone orchestrates the full clone pipeline: create dir, init the
// ".git/" skeleton, discover refs, fetch the pack, decode it, and
// check out HEAD's tree into dir. log may be nil. Any step failing
// aborts the clone with the originating error; partial state on disk
// is not cleaned up.
func Clone(url, dir string, client *transport.Client, useCache bool, log *logging.Logger) error {
	if log == nil {
		log = logging.NewNop()
	}
	log = log.WithOp("clone")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return wrapIO("clone.mkdir", err)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		return wrapIO("clone.getwd", err)
	}
	if err := os.Chdir(dir); err != nil {
		return wrapIO("clone.chdir", err)
	}
	defer os.Chdir(originalDir)

	r, err := Init(".")
	if err != nil {
		return err
	}

	var cache *transport.PackCache
	if useCache {
		cache = transport.NewPackCache(r.GitDir)
	}

	log.Info("discovering refs", zap.String("url", url))
	refsBody, err := client.GetRefs(url)
	if err != nil {
		return err
	}
	head, err := transport.ParseHead(refsBody)
	if err != nil {
		return err
	}
	log.Info("discovered head", zap.String("head", string(head)))

	var packResp []byte
	if cache != nil {
		if cached, ok := cache.Get(url, head); ok {
			packResp = cached
		}
	}
	if packResp == nil {
		want := transport.BuildWant(head)
		packResp, err = client.FetchPack(url, want)
		if err != nil {
			return err
		}
		if cache != nil {
			cache.Put(url, head, packResp)
		}
	}

	packData, err := transport.StripSideband(packResp)
	if err != nil {
		return err
	}

	ids, err := object.DecodePack(r.Store, packData)
	if err != nil {
		return err
	}
	log.Info("decoded pack", zap.Int("objects", len(ids)))

	commitObj, err := r.Store.Read(head)
	if err != nil {
		return err
	}
	if commitObj.Kind != object.TypeCommit {
		return wrapBadHeader("clone.checkout", fmt.Errorf("head %s is a %s, not a commit", head, commitObj.Kind))
	}
	commit, err := object.ParseCommit(commitObj.Body)
	if err != nil {
		return err
	}

	if err := r.CheckoutTree(commit.TreeHash, "."); err != nil {
		return err
	}
	log.Info("checkout complete", zap.String("tree", string(commit.TreeHash)))

	return nil
}

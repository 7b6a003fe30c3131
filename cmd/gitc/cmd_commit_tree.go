package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh"

	"github.com/jeerrry/gitc/pkg/object"
	"github.com/jeerrry/gitc/pkg/repo"
)

const commitSignaturePrefix = "sshsig-v1"

func newCommitTreeCmd() *cobra.Command {
	var parentFlags []string
	var message string
	var signKeyPath string

	cmd := &cobra.Command{
		Use:   "commit-tree <tree-id>",
		Short: "Write a commit object pointing at a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			treeHash := object.Hash(args[0])

			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			parents := make([]object.Hash, 0, len(parentFlags))
			for _, p := range parentFlags {
				parents = append(parents, object.Hash(p))
			}

			body := object.MarshalCommit(treeHash, parents, message)

			if signKeyPath != "" {
				sig, err := signCommit(signKeyPath, body)
				if err != nil {
					return fmt.Errorf("commit-tree: %w", err)
				}
				body = append(body, []byte("\nsignature "+sig+"\n")...)
			}

			id, err := r.Store.Write(object.Frame(object.TypeCommit, body))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&parentFlags, "parent", "p", nil, "parent commit id (repeatable)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.Flags().StringVar(&signKeyPath, "sign", "", "SSH private key path to sign the commit with")
	return cmd
}

// signCommit signs payload with the SSH private key at keyPath and
// returns a "sshsig-v1:<format>:<pubkey-b64>:<sig-b64>" token. The
// caller appends it as a "signature <token>" line after the commit
// message, where the core's tree-hash extraction never interprets it.
func signCommit(keyPath string, payload []byte) (string, error) {
	resolved, err := resolveSigningKeyPath(keyPath)
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(resolved)
	if err != nil {
		return "", fmt.Errorf("read signing key %q: %w", resolved, err)
	}
	signer, err := ssh.ParsePrivateKey(raw)
	if err != nil {
		return "", fmt.Errorf("parse signing key %q: %w", resolved, err)
	}

	sig, err := signer.Sign(rand.Reader, payload)
	if err != nil {
		return "", err
	}
	pubB64 := base64.StdEncoding.EncodeToString(signer.PublicKey().Marshal())
	sigB64 := base64.StdEncoding.EncodeToString(sig.Blob)
	return fmt.Sprintf("%s:%s:%s:%s", commitSignaturePrefix, sig.Format, pubB64, sigB64), nil
}

func resolveSigningKeyPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("signing key path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(path)
}

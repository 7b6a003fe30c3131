package object

import "fmt"

// DecodePack parses a complete pack image and persists every object it
// contains to store, resolving REF_DELTA entries against bases already
// present in the store (the pack is trusted to emit each delta's base
// before the delta itself, so no in-memory pending table is needed). It
// follows the per-record state machine READ_HDR -> (if ref-delta)
// READ_BASE_DIGEST -> INFLATE_BODY -> (if delta) RESOLVE_BASE ->
// APPLY_DELTA -> WRITE, advancing the cursor by exactly the bytes each
// step consumes. It returns the identifiers of the objects in pack
// order; any failure aborts the whole decode.
func DecodePack(store *Store, data []byte) ([]Hash, error) {
	header, err := parsePackHeader(data)
	if err != nil {
		return nil, err
	}

	offset := packHeaderSize
	ids := make([]Hash, 0, header.NumObjects)

	for i := uint32(0); i < header.NumObjects; i++ {
		if offset > len(data) {
			return nil, wrapErr(KindCorrupt, "pack.decode", fmt.Errorf("entry %d: truncated pack", i))
		}

		packType, declaredSize, n, err := decodePackEntryHeader(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		offset += n

		if packType == PackOfsDelta {
			return nil, wrapErr(KindUnsupported, "pack.decode", fmt.Errorf("entry %d: offset-delta not supported", i))
		}

		var baseDigest [20]byte
		isDelta := packType == PackRefDelta
		if isDelta {
			if offset+20 > len(data) {
				return nil, wrapErr(KindCorrupt, "pack.decode", fmt.Errorf("entry %d: truncated ref-delta base digest", i))
			}
			copy(baseDigest[:], data[offset:offset+20])
			offset += 20
		}

		body, consumed, err := inflateStream(data[offset:], int(declaredSize))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		offset += consumed

		var id Hash
		if isDelta {
			id, err = applyDeltaAndWrite(store, baseDigest, body)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
		} else {
			kind, ok := packType.objectType()
			if !ok {
				return nil, wrapErr(KindUnsupported, "pack.decode", fmt.Errorf("entry %d: unknown pack object type %d", i, packType))
			}
			id, err = store.Write(Frame(kind, body))
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// applyDeltaAndWrite resolves a ref-delta's base via the store, applies
// the delta, and writes the reconstructed object framed with the
// base's inherited kind.
func applyDeltaAndWrite(store *Store, baseDigest [20]byte, deltaBody []byte) (Hash, error) {
	baseHex := Hash(EncodeHex(baseDigest[:]))
	base, err := store.Read(baseHex)
	if err != nil {
		return "", wrapErr(KindMissingBase, "pack.apply_delta", fmt.Errorf("base %s: %w", baseHex, err))
	}

	result, err := applyDelta(base.Body, deltaBody)
	if err != nil {
		return "", err
	}

	return store.Write(Frame(base.Kind, result))
}

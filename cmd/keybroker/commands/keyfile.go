package commands

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"keybroker/internal/prekey"
	"keybroker/pkg/utils"
)

// keyFile is what keygen writes and publish reads. Private halves stay with
// the publisher; publish only sends the public ones.
type keyFile struct {
	Identity       keyPair          `json:"identity"`
	SignedPreKey   signedPreKeyPair `json:"signed_pre_key"`
	OneTimePreKeys []oneTimeKeyPair `json:"one_time_pre_keys"`
}

type keyPair struct {
	Private string `json:"private"`
	Public  string `json:"public"`
}

type signedPreKeyPair struct {
	KeyID uint32 `json:"key_id"`
	keyPair
	Signature string `json:"signature"`
}

type oneTimeKeyPair struct {
	KeyID uint32 `json:"key_id"`
	keyPair
}

func newKeyPair(rand io.Reader) (keyPair, []byte, error) {
	priv, pub, err := utils.GenerateX25519KeyPair(rand)
	if err != nil {
		return keyPair{}, nil, err
	}
	return keyPair{Private: utils.EncodeKey(priv), Public: utils.EncodeKey(pub)}, priv, nil
}

// generateKeyFile creates a fresh identity, a signed prekey with id
// signedKeyID and count one-time prekeys numbered from firstOneTimeID.
func generateKeyFile(rand io.Reader, signedKeyID uint32, firstOneTimeID uint32, count int) (*keyFile, error) {
	identity, identityPriv, err := newKeyPair(rand)
	if err != nil {
		return nil, errors.Wrap(err, "generate identity key")
	}

	spk, _, err := newKeyPair(rand)
	if err != nil {
		return nil, errors.Wrap(err, "generate signed prekey")
	}
	spkPub, err := utils.DecodeKey(spk.Public, utils.PublicKeySize)
	if err != nil {
		return nil, err
	}
	sig, err := utils.SignPreKey(identityPriv, spkPub, rand)
	if err != nil {
		return nil, errors.Wrap(err, "sign prekey")
	}

	kf := &keyFile{
		Identity: identity,
		SignedPreKey: signedPreKeyPair{
			KeyID:     signedKeyID,
			keyPair:   spk,
			Signature: utils.EncodeKey(sig),
		},
		OneTimePreKeys: make([]oneTimeKeyPair, 0, count),
	}
	for i := 0; i < count; i++ {
		kp, _, err := newKeyPair(rand)
		if err != nil {
			return nil, errors.Wrap(err, "generate one-time prekey")
		}
		kf.OneTimePreKeys = append(kf.OneTimePreKeys, oneTimeKeyPair{KeyID: firstOneTimeID + uint32(i), keyPair: kp})
	}
	return kf, nil
}

func readKeyFile(r io.Reader) (*keyFile, error) {
	var kf keyFile
	if err := json.NewDecoder(r).Decode(&kf); err != nil {
		return nil, errors.Wrap(err, "decode key file")
	}
	return &kf, nil
}

func (kf *keyFile) signedPreKeyCommand() prekey.UploadSignedPreKeyCommand {
	return prekey.UploadSignedPreKeyCommand{
		KeyID:     kf.SignedPreKey.KeyID,
		PublicKey: kf.SignedPreKey.Public,
		Signature: kf.SignedPreKey.Signature,
	}
}

// oneTimePreKeyBatches splits the one-time keys into uploads of at most size.
func (kf *keyFile) oneTimePreKeyBatches(size int) []prekey.UploadOneTimePreKeysCommand {
	var batches []prekey.UploadOneTimePreKeysCommand
	for start := 0; start < len(kf.OneTimePreKeys); start += size {
		end := min(start+size, len(kf.OneTimePreKeys))
		cmd := prekey.UploadOneTimePreKeysCommand{Keys: make([]prekey.OneTimePreKeyUpload, 0, end-start)}
		for _, k := range kf.OneTimePreKeys[start:end] {
			cmd.Keys = append(cmd.Keys, prekey.OneTimePreKeyUpload{KeyID: k.KeyID, PublicKey: k.Public})
		}
		batches = append(batches, cmd)
	}
	return batches
}

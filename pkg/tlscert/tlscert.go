// Package tlscert generates self-signed certificates for serving TLS in local
// development.
package tlscert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

const DefaultValidity = 365 * 24 * time.Hour

type Options struct {
	CertFile     string
	KeyFile      string
	Hosts        []string
	Organization string
	ValidFor     time.Duration
}

// Generate writes a new self-signed certificate and private key, overwriting
// existing files. Hosts that parse as IP addresses become IP SANs, the rest DNS SANs.
func Generate(opts Options) error {
	if opts.CertFile == "" || opts.KeyFile == "" {
		return errors.New("certificate and key paths are required")
	}
	if len(opts.Hosts) == 0 {
		return errors.New("at least one host is required")
	}
	if opts.ValidFor <= 0 {
		opts.ValidFor = DefaultValidity
	}
	if opts.Organization == "" {
		opts.Organization = "catalog local development"
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return fmt.Errorf("generate serial number: %w", err)
	}

	notBefore := time.Now().Add(-time.Minute)
	template := x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{Organization: []string{opts.Organization}, CommonName: opts.Hosts[0]},
		NotBefore:             notBefore,
		NotAfter:              notBefore.Add(opts.ValidFor),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	for _, h := range opts.Hosts {
		if ip := net.ParseIP(h); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else {
			template.DNSNames = append(template.DNSNames, h)
		}
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return fmt.Errorf("marshal private key: %w", err)
	}

	if err := writePEM(opts.CertFile, "CERTIFICATE", der, 0o644); err != nil {
		return err
	}
	return writePEM(opts.KeyFile, "PRIVATE KEY", keyDER, 0o600)
}

// EnsureSelfSigned generates a certificate only when either file is missing.
// It reports whether new files were written.
func EnsureSelfSigned(opts Options) (bool, error) {
	certExists, err := exists(opts.CertFile)
	if err != nil {
		return false, err
	}
	keyExists, err := exists(opts.KeyFile)
	if err != nil {
		return false, err
	}
	if certExists && keyExists {
		return false, nil
	}

	if err := Generate(opts); err != nil {
		return false, err
	}
	return true, nil
}

func writePEM(path, blockType string, der []byte, perm os.FileMode) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

package main

import "crypto/tls"

var tlsLoadX509KeyPair = tls.LoadX509KeyPair

// readClientCert returns a client certificate when both a cert and a
// key path are set.
func readClientCert(certPath, keyPath string) ([]tls.Certificate, error) {
	if certPath == "" || keyPath == "" {
		return nil, nil
	}
	cert, err := tlsLoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, err
	}
	return []tls.Certificate{cert}, nil
}

// generateTLSConfig produces the TLS configuration shared by every
// client. Server certificates are never verified, the tool talks to
// hosts it has no business trusting.
func generateTLSConfig(c config) (*tls.Config, error) {
	certs, err := readClientCert(c.certPath, c.keyPath)
	if err != nil {
		return nil, err
	}
	/* #nosec */
	return &tls.Config{
		InsecureSkipVerify: true,
		Certificates:       certs,
	}, nil
}

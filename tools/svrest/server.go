package svrest

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"net/http"
	"time"
)

// Start launches a mock Spectrum Virtualize REST server on listenAddr
// (e.g., 127.0.0.1:27443) with a freshly generated self-signed certificate,
// which matches how real arrays present themselves. It accepts any
// credentials at /rest/auth and serves canned JSON for the inventory
// commands svcheck runs. Returns a stop function that shuts the listener
// down.
func Start(listenAddr string) (func(), error) {
	cert, err := selfSignedCert()
	if err != nil {
		return nil, err
	}
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/rest/auth", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth-Username") == "" || r.Header.Get("X-Auth-Password") == "" {
			http.Error(w, `{"error":"missing credentials"}`, http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"token":"mock-token-0001"}`))
	})
	mux.HandleFunc("/rest/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth-Token") == "" {
			http.Error(w, `{"error":"no token"}`, http.StatusForbidden)
			return
		}
		command := r.URL.Path[len("/rest/"):]
		payload, ok := cannedPayloads[command]
		if !ok {
			http.Error(w, `{"error":"unknown command"}`, http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(payload))
	})

	srv := &http.Server{
		Handler:   mux,
		TLSConfig: &tls.Config{Certificates: []tls.Certificate{cert}},
	}
	go func() { _ = srv.ServeTLS(ln, "", "") }()

	stop := func() {
		_ = srv.Close()
		_ = ln.Close()
	}
	return stop, nil
}

func selfSignedCert() (tls.Certificate, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return tls.Certificate{}, err
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "mock-array"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
		DNSNames:     []string{"localhost"},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		return tls.Certificate{}, err
	}
	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}, nil
}

// cannedPayloads covers the commands svcheck issues by default. Shapes match
// real array output closely enough for end-to-end report generation.
var cannedPayloads = map[string]string{
	"lscurrentuser": `[{"name":"password_reset_enabled","value":"yes"},{"role":"Administrator"}]`,
	"lssystem": `{
		"product_name":"IBM FlashSystem 7200","name":"fs7200-lab","id":"0000020421E0XXXX",
		"code_level":"8.4.0.2 (build 152.22.2103###)","console_IP":"10.0.0.10:443",
		"email_organization":"Lab","email_contact":"Operator","email_reply":"ops@example.com",
		"email_contact_primary":"555-0100","auth_service_configured":"no","auth_service_type":"tip",
		"enhanced_callhome":"on","censor_callhome":"off","relationship_bandwidth_limit":"25",
		"total_drive_raw_capacity":"137.46TB","physical_capacity":"87.40TB","physical_free_capacity":"35.11TB",
		"easy_tier_acceleration":"off","compression_active":"no","compression_virtual_capacity":"0.00MB",
		"compression_compressed_capacity":"0.00MB","compression_uncompressed_capacity":"0.00MB",
		"deduplication_capacity_saving":"0.00MB","cache_prefetch":"on",
		"tiers":[
			{"tier":"tier0_flash","tier_capacity":"86.96TB","tier_free_capacity":"34.71TB"},
			{"tier":"tier_enterprise","tier_capacity":"0.00MB","tier_free_capacity":"0.00MB"}
		]}`,
	"lsnodecanister":         `[{"id":"1","name":"node1","status":"online"},{"id":"2","name":"node2","status":"online"}]`,
	"lssystemstats":          `[{"stat_name":"cpu_pc","stat_current":"2","stat_peak":"4"},{"stat_name":"fc_mb","stat_current":"11","stat_peak":"86"}]`,
	"lsnodestats":            `[{"node_id":"1","stat_name":"cpu_pc","stat_current":"2"},{"node_id":"2","stat_name":"cpu_pc","stat_current":"3"}]`,
	"lsvdisk":                `[{"id":"0","name":"vdisk0","IO_group_name":"io_grp0","status":"online","capacity":"2.00TB"}]`,
	"lshost":                 `[{"id":"0","name":"esx-01","port_count":"2","status":"online"}]`,
	"lshostcluster":          `[]`,
	"lshostvdiskmap":         `[{"id":"0","name":"esx-01","SCSI_id":"0","vdisk_id":"0","vdisk_name":"vdisk0"}]`,
	"lshostclustervolumemap": `[]`,
	"lsvdiskaccess":          `[{"vdisk_id":"0","vdisk_name":"vdisk0","IO_group_id":"0"}]`,
	"lsvdiskcopy":            `[{"vdisk_id":"0","vdisk_name":"vdisk0","copy_id":"0","status":"online"}]`,
	"lsportfc":               `[{"id":"0","fc_io_port_id":"1","port_id":"1","type":"fc","status":"active"}]`,
	"lsfcconsistgrp":         `[]`,
	"lsiogrp":                `[{"id":"0","name":"io_grp0","node_count":"2","vdisk_count":"1"}]`,
	"lsmdiskgrp":             `[{"id":"0","name":"pool0","status":"online","mdisk_count":"1","capacity":"87.40TB"}]`,
	"lssystemip":             `[{"id":"1","cluster_id":"1","cluster_name":"fs7200-lab","IP_address":"10.0.0.10"}]`,
	"lspartnership":          `[]`,
	"lseventlog":             `[{"sequence_number":"120","last_timestamp":"201023081200","object_type":"cluster","status":"message"}]`,
}

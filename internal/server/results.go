package server

import (
	"fmt"
	"time"

	"github.com/nao1215/osintnexus/internal/tor"
)

// latencies is the simulated processing time of each module.
var latencies = map[string]time.Duration{
	"osint":         2 * time.Second,
	"geoint":        1500 * time.Millisecond,
	"peopleosint":   2 * time.Second,
	"humint":        1 * time.Second,
	"sigint":        3 * time.Second,
	"socmint":       2 * time.Second,
	"darknet":       4 * time.Second,
	"cryptanalysis": 5 * time.Second,
	"network":       3 * time.Second,
	"blockchain":    2500 * time.Millisecond,
}

// latencyFor returns the scaled latency of moduleID.
func latencyFor(moduleID string, scale float64) time.Duration {
	if scale <= 0 {
		return 0
	}
	return time.Duration(float64(latencies[moduleID]) * scale)
}

// cannedResults returns the mock output of running tool on target.
// The second return value is false when moduleID is unknown.
func cannedResults(moduleID, tool, target string) (map[string]any, bool) {
	switch moduleID {
	case "osint":
		return osintResults(tool, target), true
	case "geoint":
		return map[string]any{
			"coordinates":           map[string]any{"lat": 40.7128, "lng": -74.0060},
			"location":              "New York, NY",
			"elevation":             "10m",
			"satellite_imagery":     "Available",
			"nearby_infrastructure": []string{"Bridges", "Airports", "Ports"},
		}, true
	case "peopleosint":
		name := target
		if name == "" {
			name = "Unknown"
		}
		return map[string]any{
			"identity": map[string]any{
				"name":               name,
				"possible_locations": []string{"New York", "California", "Texas"},
				"age_range":          "25-35",
				"occupation":         "Software Engineer",
			},
			"social_presence": map[string]any{
				"platforms":      []string{"LinkedIn", "Twitter", "Facebook"},
				"activity_level": "High",
				"network_size":   "500+",
			},
		}, true
	case "humint":
		return map[string]any{
			"persona_created":    true,
			"background":         "Professional software developer",
			"cover_story":        "Attending tech conference",
			"interaction_points": []string{"Common interests", "Professional networking", "Industry events"},
		}, true
	case "sigint":
		return map[string]any{
			"network_scan": map[string]any{
				"active_hosts": 15,
				"open_ports":   []int{80, 443, 22, 3389},
				"services":     []string{"HTTP", "HTTPS", "SSH", "RDP"},
			},
			"signal_analysis": map[string]any{
				"frequency_bands": []string{"2.4GHz", "5GHz"},
				"protocols":       []string{"WiFi", "Bluetooth", "Cellular"},
			},
		}, true
	case "socmint":
		return map[string]any{
			"sentiment_analysis": map[string]any{"positive": 65, "negative": 20, "neutral": 15},
			"network_analysis": map[string]any{
				"connections":       250,
				"influential_nodes": []string{"@techleader", "@industry_expert"},
				"communities":       []string{"Tech", "Startup", "AI/ML"},
			},
		}, true
	case "darknet":
		return darknetResults(target), true
	case "cryptanalysis":
		return map[string]any{
			"hash_analysis":   map[string]any{"algorithm": "SHA-256", "strength": "Strong", "crack_time": "Not feasible"},
			"cipher_analysis": map[string]any{"type": "AES-256", "mode": "CBC", "vulnerability": "None detected"},
		}, true
	case "network":
		return map[string]any{
			"topology": map[string]any{"nodes": 25, "edges": 45, "clusters": 3},
			"traffic_analysis": map[string]any{
				"protocols":       map[string]int{"HTTP": 45, "HTTPS": 35, "SSH": 15, "FTP": 5},
				"bandwidth_usage": "85%",
				"anomalies":       2,
			},
		}, true
	case "blockchain":
		return map[string]any{
			"address_analysis": map[string]any{
				"balance":           "1.25 BTC",
				"transaction_count": 47,
				"first_seen":        "2023-01-15",
				"last_activity":     "2024-08-30",
			},
			"transaction_graph": map[string]any{"incoming": 23, "outgoing": 24, "clustering_score": 0.75},
		}, true
	default:
		return nil, false
	}
}

func osintResults(tool, target string) map[string]any {
	switch tool {
	case "theHarvester":
		return map[string]any{
			"emails":  []string{"admin@" + target, "info@" + target, "support@" + target},
			"domains": []string{"mail." + target, "www." + target, "ftp." + target},
			"ips":     []string{"192.168.1.1", "10.0.0.1", "172.16.0.1"},
		}
	case "Sherlock":
		return map[string]any{
			"found_profiles": []map[string]string{
				{"platform": "Twitter", "url": "https://twitter.com/" + target},
				{"platform": "GitHub", "url": "https://github.com/" + target},
				{"platform": "Instagram", "url": "https://instagram.com/" + target},
			},
		}
	default:
		return map[string]any{"message": fmt.Sprintf("Executed %s on %s", tool, target)}
	}
}

func darknetResults(target string) map[string]any {
	results := map[string]any{
		"tor_status": "Connected",
		"hidden_services": []map[string]string{
			{"name": "Market Alpha", "status": "Online"},
			{"name": "Forum Beta", "status": "Offline"},
			{"name": "Service Gamma", "status": "Online"},
		},
		"threat_indicators": []string{"Malware samples", "Stolen credentials", "Exploit kits"},
	}

	host := tor.HostOf(target)
	switch {
	case tor.IsValidV3Address(host):
		results["onion_address"] = map[string]any{"host": host, "version": 3, "valid": true}
	case tor.IsV2Address(host):
		results["onion_address"] = map[string]any{"host": host, "version": 2, "valid": false, "note": "v2 onion services are retired"}
	}
	return results
}

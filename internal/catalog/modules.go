package catalog

import "github.com/nao1215/osintnexus/internal/model"

// modules is the canonical module table.
var modules = []Module{
	{
		ID:          "osint",
		Name:        "OSINT",
		Title:       "Open Source Intelligence",
		Description: "Gather intelligence from publicly available sources",
		Color:       "#6750A4",
		Icon:        "Security",
		Glyph:       "◈",
		Tools: []Tool{
			{Name: "theHarvester", Description: "Email, subdomain and people names harvester from different public sources", Status: model.ToolActive, Category: "Email Intelligence"},
			{Name: "Sherlock", Description: "Hunt down social media accounts by username across social networks", Status: model.ToolActive, Category: "Social Intelligence"},
			{Name: "SpiderFoot", Description: "Automated OSINT collection tool for reconnaissance", Status: model.ToolBeta, Category: "Reconnaissance"},
			{Name: "Maltego CE", Description: "Interactive data mining tool for link analysis", Status: model.ToolActive, Category: "Link Analysis"},
		},
	},
	{
		ID:          "geoint",
		Name:        "GEOINT",
		Title:       "Geospatial Intelligence",
		Description: "Location-based intelligence and mapping analysis",
		Color:       "#2D7D32",
		Icon:        "Map",
		Glyph:       "⌖",
		Tools: []Tool{
			{Name: "Satellite Imagery", Description: "High-resolution satellite imagery analysis", Status: model.ToolActive, Category: "Imagery Analysis"},
			{Name: "GPS Analysis", Description: "Coordinate analysis and location intelligence", Status: model.ToolActive, Category: "Location Analysis"},
			{Name: "Terrain Mapping", Description: "Advanced terrain and elevation mapping", Status: model.ToolBeta, Category: "Terrain Analysis"},
		},
	},
	{
		ID:          "peopleosint",
		Name:        "PEOPLEOSINT",
		Title:       "People Intelligence",
		Description: "Person-focused open source intelligence gathering",
		Color:       "#F57C00",
		Icon:        "PersonSearch",
		Glyph:       "☺",
		Tools: []Tool{
			{Name: "Social Profiles", Description: "Comprehensive social media profile analysis", Status: model.ToolActive, Category: "Social Analysis"},
			{Name: "Background Checks", Description: "Public records and background verification", Status: model.ToolActive, Category: "Verification"},
			{Name: "Identity Verification", Description: "Cross-reference identity across platforms", Status: model.ToolBeta, Category: "Identity Analysis"},
		},
	},
	{
		ID:          "humint",
		Name:        "HUMINT",
		Title:       "Human Intelligence",
		Description: "Intelligence from human sources and personas",
		Color:       "#7B1FA2",
		Icon:        "Psychology",
		Glyph:       "☊",
		Tools: []Tool{
			{Name: "Persona Creation", Description: "Create believable personas for investigations", Status: model.ToolActive, Category: "Persona Management"},
			{Name: "Chat Simulation", Description: "Simulate conversations and interactions", Status: model.ToolBeta, Category: "Social Engineering"},
			{Name: "Behavioral Analysis", Description: "Analyze human behavior patterns", Status: model.ToolActive, Category: "Behavioral Intelligence"},
		},
	},
	{
		ID:          "sigint",
		Name:        "SIGINT",
		Title:       "Signals Intelligence",
		Description: "Electronic signals and communications intelligence",
		Color:       "#D32F2F",
		Icon:        "SignalCellularAlt",
		Glyph:       "▟",
		Tools: []Tool{
			{Name: "Network Scanning", Description: "Advanced network reconnaissance and mapping", Status: model.ToolActive, Category: "Network Intelligence"},
			{Name: "RF Monitoring", Description: "Radio frequency signal analysis and monitoring", Status: model.ToolBeta, Category: "Signal Analysis"},
			{Name: "Signal Analysis", Description: "Deep signal processing and interpretation", Status: model.ToolActive, Category: "Signal Processing"},
		},
	},
	{
		ID:          "socmint",
		Name:        "SOCMINT",
		Title:       "Social Media Intelligence",
		Description: "Intelligence from social media platforms",
		Color:       "#1976D2",
		Icon:        "Groups",
		Glyph:       "⚇",
		Tools: []Tool{
			{Name: "Sentiment Analysis", Description: "Analyze sentiment and emotions in social content", Status: model.ToolActive, Category: "Content Analysis"},
			{Name: "Network Mapping", Description: "Map social networks and relationships", Status: model.ToolActive, Category: "Network Analysis"},
			{Name: "Trend Analysis", Description: "Identify trends and patterns in social data", Status: model.ToolBeta, Category: "Trend Intelligence"},
		},
	},
	{
		ID:          "darknet",
		Name:        "Darknet",
		Title:       "Dark Web Monitoring",
		Description: "Monitor dark web activities and threats",
		Color:       "#424242",
		Icon:        "VisibilityOff",
		Glyph:       "◐",
		Tools: []Tool{
			{Name: "TOR Analysis", Description: "Analyze TOR network activities and nodes", Status: model.ToolActive, Category: "Network Analysis"},
			{Name: "Hidden Services", Description: "Monitor and analyze hidden services", Status: model.ToolActive, Category: "Service Monitoring"},
			{Name: "Threat Feeds", Description: "Real-time threat intelligence feeds", Status: model.ToolBeta, Category: "Threat Intelligence"},
		},
	},
	{
		ID:          "cryptanalysis",
		Name:        "Cryptanalysis",
		Title:       "Cryptographic Analysis",
		Description: "Analyze and break cryptographic systems",
		Color:       "#FF6F00",
		Icon:        "Lock",
		Glyph:       "⚿",
		Tools: []Tool{
			{Name: "Hashcat", Description: "Advanced password recovery and hash cracking", Status: model.ToolActive, Category: "Password Cracking"},
			{Name: "John the Ripper", Description: "Fast password cracker with multiple algorithms", Status: model.ToolActive, Category: "Password Analysis"},
			{Name: "Cipher Analysis", Description: "Classical and modern cipher breaking tools", Status: model.ToolBeta, Category: "Cipher Breaking"},
		},
	},
	{
		ID:          "network",
		Name:        "Network",
		Title:       "Network Analysis",
		Description: "Network infrastructure analysis and monitoring",
		Color:       "#388E3C",
		Icon:        "NetworkCheck",
		Glyph:       "⊞",
		Tools: []Tool{
			{Name: "Nmap", Description: "Network discovery and security auditing", Status: model.ToolActive, Category: "Network Scanning"},
			{Name: "Wireshark", Description: "Network protocol analyzer and packet capture", Status: model.ToolActive, Category: "Packet Analysis"},
			{Name: "Network Topology", Description: "Visualize and map network infrastructure", Status: model.ToolBeta, Category: "Network Mapping"},
		},
	},
	{
		ID:          "blockchain",
		Name:        "Blockchain",
		Title:       "Blockchain Analysis",
		Description: "Cryptocurrency and blockchain investigation",
		Color:       "#FF9800",
		Icon:        "CurrencyBitcoin",
		Glyph:       "₿",
		Tools: []Tool{
			{Name: "Address Analysis", Description: "Analyze cryptocurrency addresses and transactions", Status: model.ToolActive, Category: "Address Intelligence"},
			{Name: "Transaction Tracking", Description: "Track cryptocurrency transaction flows", Status: model.ToolActive, Category: "Transaction Analysis"},
			{Name: "Clustering", Description: "Cluster analysis for address correlation", Status: model.ToolBeta, Category: "Pattern Analysis"},
		},
	},
}

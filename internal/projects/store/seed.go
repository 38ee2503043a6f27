package store

import (
	"time"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/domain"
)

// seedProjects returns the demo catalog used when the persistence key is
// empty. Upload dates are spread backwards from now so the "recent" views
// have something to show on a fresh deployment.
func seedProjects(now time.Time) []domain.Project {
	daysAgo := func(d int) int64 {
		return now.Add(-time.Duration(d) * 24 * time.Hour).UnixMilli()
	}

	return []domain.Project{
		{
			ID:           1,
			Title:        "Decentralized Identity Management System",
			Description:  "A blockchain-based identity management system that allows users to control their personal data and share it securely with service providers.",
			DepartmentID: 1,
			Year:         2023,
			AccessLevel:  domain.AccessPublic,
			IPFSHash:     "QmT8TstX4ngjQwvQfS9ZnuXAT3Cmey1NefdRs5QXwXFiP7",
			Authors:      []string{"0x1234567890123456789012345678901234567890"},
			UploadDate:   daysAgo(5),
		},
		{
			ID:           2,
			Title:        "Smart Grid Energy Distribution",
			Description:  "An intelligent energy distribution system that uses IoT devices and blockchain to optimize energy consumption in smart buildings.",
			DepartmentID: 2,
			Year:         2023,
			AccessLevel:  domain.AccessRestricted,
			IPFSHash:     "QmUNLLsPACCz1vLxQVkXqqLX5R1X345qqfHbsf67hvA3Nn",
			Authors:      []string{"0x2345678901234567890123456789012345678901"},
			UploadDate:   daysAgo(10),
		},
		{
			ID:           3,
			Title:        "Blockchain-based Supply Chain Management",
			Description:  "A supply chain management system that uses blockchain to track products from manufacturer to consumer, ensuring authenticity and transparency.",
			DepartmentID: 6,
			Year:         2023,
			AccessLevel:  domain.AccessPublic,
			IPFSHash:     "QmZMHCFoYMfxw7bUca4wRtmD8ubWxucJNAqjTgG5ATJLVd",
			Authors:      []string{"0x3456789012345678901234567890123456789012"},
			UploadDate:   daysAgo(15),
		},
		{
			ID:           4,
			Title:        "Privacy-Preserving Machine Learning",
			Description:  "A machine learning framework that preserves data privacy by using federated learning and secure multi-party computation.",
			DepartmentID: 1,
			Year:         2023,
			AccessLevel:  domain.AccessPrivate,
			IPFSHash:     "QmSgvgwxZGMrjhpVNvKmh3mBJhgUVfhKhrSVnxKzCGNnxk",
			Authors:      []string{"0x4567890123456789012345678901234567890123"},
			UploadDate:   daysAgo(20),
		},
		{
			ID:           5,
			Title:        "Sustainable Building Materials Analysis",
			Description:  "Analysis of sustainable building materials and their impact on energy consumption and carbon footprint in modern construction.",
			DepartmentID: 4,
			Year:         2023,
			AccessLevel:  domain.AccessPublic,
			IPFSHash:     "QmW2WQi7j6c7UgJTarActp7tDNikE4B2qXtFCfLPdsgaTQ",
			Authors:      []string{"0x5678901234567890123456789012345678901234"},
			UploadDate:   daysAgo(25),
		},
		{
			ID:           6,
			Title:        "Quantum Algorithm for Optimization Problems",
			Description:  "A quantum computing algorithm designed to solve complex optimization problems more efficiently than classical approaches.",
			DepartmentID: 7,
			Year:         2023,
			AccessLevel:  domain.AccessRestricted,
			IPFSHash:     "QmTkzDwWqPbnAh5YiV5VwcTLnGdwSNsNTn2aDxdXBFca7D",
			Authors:      []string{"0x6789012345678901234567890123456789012345"},
			UploadDate:   daysAgo(30),
		},
	}
}

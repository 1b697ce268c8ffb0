// Package docscrape provides a CLI scraper for the Python documentation
// and PEP index sites. It lists "What's New" articles, lists the latest
// documentation versions, downloads the PDF archive, and cross-checks PEP
// statuses between the index page and each PEP's own page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package docscrape

// Package assets provides the CSS styles injected into converted documents.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader - styles compiled into the binary (default, print)
//	    ├── DirLoader      - styles read from a directory on disk
//	    └── Resolver       - tries the directory first, then embedded styles
//
// A directory holds one file per style:
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// # Security
//
// Style names are validated to prevent path traversal. DirLoader resolves
// symlinks and verifies that every path stays within its base directory.
package assets

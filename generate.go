package unittok

// Generate documentation for the root package
//go:generate gomarkdoc -o README.md -e . --embed --repository.url https://github.com/agentstation/unittok --repository.default-branch master --repository.path /

// Generate documentation for the BPE package
//go:generate gomarkdoc -o ./bpe/README.md -e ./bpe --embed --repository.url https://github.com/agentstation/unittok --repository.default-branch master --repository.path /bpe

// Generate documentation for the RLE package
//go:generate gomarkdoc -o ./rle/README.md -e ./rle --embed --repository.url https://github.com/agentstation/unittok --repository.default-branch master --repository.path /rle

// Generate documentation for the PackBits package
//go:generate gomarkdoc -o ./packbits/README.md -e ./packbits --embed --repository.url https://github.com/agentstation/unittok --repository.default-branch master --repository.path /packbits

// Generate documentation for the CLI package
//go:generate gomarkdoc -o ./cmd/unittok/README.md -e ./cmd/unittok --embed --repository.url https://github.com/agentstation/unittok --repository.default-branch master --repository.path /cmd/unittok

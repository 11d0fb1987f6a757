package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/seqforge/mmseqs-msa/pkg/msa"
)

func (s *Server) registerTools() {
	generate := mcp.NewTool("generate_msa",
		mcp.WithDescription("Generate a Multiple Sequence Alignment (MSA) for a protein sequence using MMseqs2. "+
			"Runs the complete pipeline against a protein database and returns the alignment in a3m format."),
		mcp.WithString("sequence",
			mcp.Description("Protein sequence as a string (one-letter amino acid codes). Either sequence or fasta_file must be provided.")),
		mcp.WithString("fasta_file",
			mcp.Description("Path to a FASTA file containing the query sequence(s). Either sequence or fasta_file must be provided.")),
		mcp.WithString("sequence_name",
			mcp.Description("Name/identifier for the sequence, used for generated file names."),
			mcp.DefaultString(msa.DefaultSequenceName)),
		mcp.WithString("output_dir",
			mcp.Description("Directory to store output files. When omitted a temporary directory is used and removed afterwards.")),
		mcp.WithString("database_path",
			mcp.Description("Path to the MMseqs2 database. Defaults to the configured reference database.")),
		mcp.WithBoolean("gpu",
			mcp.Description("Use GPU acceleration for the search."),
			mcp.DefaultBool(true)),
		mcp.WithNumber("threads",
			mcp.Description("Number of CPU threads to use."),
			mcp.DefaultNumber(msa.DefaultThreads)),
		mcp.WithNumber("sensitivity",
			mcp.Description("Search sensitivity; higher is more sensitive."),
			mcp.DefaultNumber(msa.DefaultSensitivity)),
		mcp.WithNumber("num_iterations",
			mcp.Description("Number of search iterations."),
			mcp.DefaultNumber(msa.DefaultNumIterations)),
		mcp.WithNumber("e_value",
			mcp.Description("E-value threshold."),
			mcp.DefaultNumber(msa.DefaultEValue)),
		mcp.WithNumber("max_seqs",
			mcp.Description("Maximum number of sequences to return."),
			mcp.DefaultNumber(msa.DefaultMaxSeqs)),
		mcp.WithString("return_format",
			mcp.Description("a3m returns the MSA content, path returns the output file path."),
			mcp.Enum(string(msa.ReturnContent), string(msa.ReturnPath)),
			mcp.DefaultString(string(msa.ReturnContent))),
	)
	s.mcp.AddTool(generate, s.handleGenerateMSA)

	generateFromFile := mcp.NewTool("generate_msa_from_file",
		mcp.WithDescription("Generate a Multiple Sequence Alignment (MSA) from a FASTA file and save all artifacts to an output directory. "+
			"Returns the path to the generated a3m file."),
		mcp.WithString("fasta_file",
			mcp.Required(),
			mcp.Description("Path to a FASTA file containing the query sequence(s).")),
		mcp.WithString("output_dir",
			mcp.Required(),
			mcp.Description("Directory to store output files; created if it does not exist.")),
		mcp.WithString("database_path",
			mcp.Description("Path to the MMseqs2 database. Defaults to the configured reference database.")),
		mcp.WithBoolean("gpu",
			mcp.Description("Use GPU acceleration for the search."),
			mcp.DefaultBool(true)),
		mcp.WithNumber("threads",
			mcp.Description("Number of CPU threads to use."),
			mcp.DefaultNumber(msa.DefaultThreads)),
		mcp.WithNumber("sensitivity",
			mcp.Description("Search sensitivity; higher is more sensitive."),
			mcp.DefaultNumber(msa.DefaultSensitivity)),
		mcp.WithNumber("num_iterations",
			mcp.Description("Number of search iterations."),
			mcp.DefaultNumber(msa.DefaultNumIterations)),
		mcp.WithNumber("e_value",
			mcp.Description("E-value threshold."),
			mcp.DefaultNumber(msa.DefaultEValue)),
		mcp.WithNumber("max_seqs",
			mcp.Description("Maximum number of sequences to return."),
			mcp.DefaultNumber(msa.DefaultMaxSeqs)),
	)
	s.mcp.AddTool(generateFromFile, s.handleGenerateMSAFromFile)
}

func (s *Server) handleGenerateMSA(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pipelineReq := s.requestFromArgs(req)

	return s.run(ctx, req.Params.Name, pipelineReq)
}

func (s *Server) handleGenerateMSAFromFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pipelineReq := s.requestFromArgs(req)
	pipelineReq.Sequence = ""
	pipelineReq.ReturnFormat = msa.ReturnPath

	return s.run(ctx, req.Params.Name, pipelineReq)
}

func (s *Server) run(ctx context.Context, tool string, req msa.Request) (*mcp.CallToolResult, error) {
	err := s.acquire(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	defer s.release()

	s.log.Info("tool call accepted",
		zap.String("tool", tool), zap.String("sequence_name", req.SequenceName))

	result, err := s.runner.Generate(ctx, req)
	if err != nil {
		s.log.Error("tool call failed", zap.String("tool", tool), zap.Error(err))

		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(result), nil
}

// requestFromArgs decodes the shared tool arguments into a pipeline request.
func (s *Server) requestFromArgs(req mcp.CallToolRequest) msa.Request {
	databasePath := req.GetString("database_path", "")
	if databasePath == "" {
		databasePath = s.defaultDB
	}

	return msa.Request{
		Sequence:      req.GetString("sequence", ""),
		FastaFile:     req.GetString("fasta_file", ""),
		SequenceName:  req.GetString("sequence_name", ""),
		OutputDir:     req.GetString("output_dir", ""),
		DatabasePath:  databasePath,
		GPU:           req.GetBool("gpu", true),
		Threads:       req.GetInt("threads", msa.DefaultThreads),
		Sensitivity:   req.GetFloat("sensitivity", msa.DefaultSensitivity),
		NumIterations: req.GetInt("num_iterations", msa.DefaultNumIterations),
		EValue:        req.GetFloat("e_value", msa.DefaultEValue),
		MaxSeqs:       req.GetInt("max_seqs", msa.DefaultMaxSeqs),
		ReturnFormat:  msa.ReturnFormat(req.GetString("return_format", string(msa.ReturnContent))),
	}
}

package core

import "context"

// ScanRange scans a single host; UDPScanner overrides the embedded
// Scanner's ScanRange so it dispatches through the UDP ScanTargets below
// rather than the promoted TCP implementation.
func (s *UDPScanner) ScanRange(ctx context.Context, host string, ports []uint16) {
	s.ScanTargets(ctx, []ScanTarget{{Host: host, Ports: ports}})
}

// ScanTargets runs UDP scans across the provided host targets.
func (s *UDPScanner) ScanTargets(ctx context.Context, targets []ScanTarget) {
	totalPorts := totalPortCount(targets)
	if totalPorts == 0 {
		close(s.results)
		return
	}

	s.errors = newErrorBucket(len(targets))
	s.progressReporter.SetCompleted(0)

	jobs := make(chan scanJob, totalPorts)
	progressDone := s.progressReporter.StartReporting(ctx, totalPorts)

	s.startUDPWorkers(ctx, jobs)

	go s.feedJobs(ctx, jobs, targets)

	s.wg.Wait()

	s.finishScan(ctx, progressDone)
}

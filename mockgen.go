//go:build gomock || generate

package asynctls

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package asynctls -self_package github.com/asynctls/asynctls -destination mock_transport_test.go github.com/asynctls/asynctls Transport"
//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package asynctls -self_package github.com/asynctls/asynctls -destination mock_connecting_transport_test.go github.com/asynctls/asynctls ConnectingTransport"
//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package asynctls -self_package github.com/asynctls/asynctls -destination mock_engine_test.go github.com/asynctls/asynctls Engine"
//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package asynctls -self_package github.com/asynctls/asynctls -destination mock_psk_store_test.go github.com/asynctls/asynctls PSKStore"
//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package asynctls -self_package github.com/asynctls/asynctls -destination mock_handshake_callback_test.go github.com/asynctls/asynctls HandshakeCallback"
//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package asynctls -self_package github.com/asynctls/asynctls -destination mock_connect_callback_test.go github.com/asynctls/asynctls ConnectCallback"
//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package asynctls -self_package github.com/asynctls/asynctls -destination mock_write_callback_test.go github.com/asynctls/asynctls WriteCallback"
//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package asynctls -self_package github.com/asynctls/asynctls -destination mock_read_callback_test.go github.com/asynctls/asynctls ReadCallback"
//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package asynctls -self_package github.com/asynctls/asynctls -destination mock_replay_safety_callback_test.go github.com/asynctls/asynctls ReplaySafetyCallback"
